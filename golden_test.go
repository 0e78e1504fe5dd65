package format_test

import (
	"testing"

	format "github.com/diamond-lizard/srfi-48"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// The golden corpus feeds native Go values, as a YAML decoder produces them,
// through the directive table. This is the shape of argument foreign callers
// hand us: plain ints, floats, strings, and []any slices rather than Pair
// lists.
const goldenYAML = `
- name: literal passthrough
  template: "nothing to see"
  want: "nothing to see"
- name: escaped tilde
  template: "50~~50"
  want: "50~50"
- name: human string
  template: "hi ~a"
  args: [there]
  want: "hi there"
- name: machine string
  template: "~s"
  args: [there]
  want: "\"there\""
- name: decimal
  template: "~d"
  args: [42]
  want: "42"
- name: hex
  template: "~x"
  args: [255]
  want: "ff"
- name: octal and binary
  template: "~o ~b"
  args: [8, 6]
  want: "10 110"
- name: float display
  template: "~a"
  args: [2.5]
  want: "2.5"
- name: yaml sequence renders as vector
  template: "~a"
  args: [[1, 2, 3]]
  want: "#(1 2 3)"
- name: nested sequence
  template: "~s"
  args: [[a, [b, c]]]
  want: "#(\"a\" #(\"b\" \"c\"))"
- name: fixed width float
  template: "~6,2F"
  args: [3.14159]
  want: "  3.14"
- name: fixed width string
  template: "~6,2F"
  args: [pi]
  want: "    pi"
- name: booleans
  template: "~a ~a"
  args: [true, false]
  want: "#t #f"
- name: mixed line
  template: "~d item(s): ~a~%"
  args: [2, [x, y]]
  want: "2 item(s): #(x y)\n"
`

type goldenCase struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Args     []any  `yaml:"args"`
	Want     string `yaml:"want"`
}

func TestGoldenCorpus(t *testing.T) {
	t.Parallel()
	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal([]byte(goldenYAML), &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			got, err := format.String(tc.Template, tc.Args...)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}
