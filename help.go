package format

// helpText is emitted verbatim by the ~h directive. One line per directive so
// the output stays greppable.
const helpText = `(format <template> <arg> ...) -- directive table
~a  any      human-readable rendering of the argument
~s  any      machine-readable rendering of the argument
~w  any      machine-readable rendering with #n= / #n# sharing labels
~d  integer  decimal
~x  integer  hexadecimal
~o  integer  octal
~b  integer  binary
~c  char     the character itself
~y  list     pretty-printed rendering
~?  2 args   recursive format: sub-template and its argument list
~k  2 args   alias of ~?
~wF number   fixed format with optional width and precision, e.g. ~8,2F
~~  --       literal tilde
~t  --       tab
~%  --       newline
~&  --       newline unless already at the start of a line
~_  --       space
~h  --       this table
`

// Help returns the text the ~h directive emits.
func Help() string { return helpText }
