// Package format renders template strings containing tilde directives, in the
// style of Scheme's intermediate format strings.
//
// A template is literal text interspersed with two-character directives. Each
// consuming directive substitutes a rendering of the next argument; the
// argument count must match the consuming-directive count exactly. The central
// entry points are [String], [Write], and [Print], which differ only in where
// the output goes.
//
//	s, err := format.String("~a slices of ~a~%", 3, "pie")
//	// "3 slices of pie\n"
//
// # Directives
//
//	~a   human-readable rendering of the next argument
//	~s   machine-readable rendering of the next argument
//	~w   machine-readable rendering with shared-structure labels
//	~d   integer argument in decimal
//	~x   integer argument in hexadecimal
//	~o   integer argument in octal
//	~b   integer argument in binary
//	~c   character argument, emitted verbatim
//	~y   pretty-printed rendering of a list argument
//	~?   recursive format: consumes a sub-template and an argument list
//	~k   alias of ~?
//	~wF  fixed format, optional width and precision as in ~8,2F
//	~~   literal tilde
//	~t   tab
//	~%   newline
//	~&   newline unless already at the start of a line
//	~_   space
//	~h   this directive table
//
// Directive codes are case-insensitive.
//
// # Values
//
// Arguments are ordinary Go values. Lists are built from [Pair] cells via
// [List]; [Symbol] renders bare and [Char] renders as a single character.
// Slices of any ([]any) render as vectors. Integers of any width, *big.Int,
// *big.Rat, floats, and complex numbers are all understood by the numeric
// directives. Values outside the model fall back to fmt-style rendering.
//
// # Shared structure
//
// The ~w directive detects sharing and cycles by identity. A sub-structure
// reached twice is emitted once as #n=<datum> and thereafter as #n#, so cyclic
// lists render finitely:
//
//	l := format.List(format.Symbol("a"), format.Symbol("b"))
//	l.Cdr.(*format.Pair).Cdr = l
//	s, _ := format.String("~w", l) // "#1=(a b . #1#)"
//
// # Sinks
//
// Freshline state (whether the last emitted character was a newline, used by
// ~&) belongs to the output stream, not to a single call. Use [NewSink] to
// hold one stream across several format calls:
//
//	sink := format.NewSink(os.Stdout)
//	sink.Format("header~%")
//	sink.Format("~&body~%") // ~& is a no-op here
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMalformedDirective] — bad or truncated directive syntax
//   - [ErrArgumentUnderflow] — a consuming directive found no argument
//   - [ErrArgumentOverflow] — arguments remained after the template ended
//   - [ErrTypeMismatch] — an argument has the wrong shape for its directive
//
// Errors abort the current call immediately; output already written to a
// stream is not rolled back.
package format
