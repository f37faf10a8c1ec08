package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	command.SetOut(&buf)
	// SetArgs(nil) would fall back to os.Args
	command.SetArgs(append([]string{}, args...))

	require.NoError(t, command.Execute())
	return buf.String()
}

func TestCommand(t *testing.T) {
	out := execute(t)

	assert.Equal(t, `{
  "C.Messenger": "96fc4e7e0691a83b54577e08f7b58c0b",
  "C.Jobs": "59a717385c7f55c7c32d6e89a30a9e98",
  "C.Office": "d1af0c6508502de08928e448488b7b40",
  "C.Policy": "f1577812c9531ccd2a584e6c01cea5b1",
  "C.Runner": "86e898b43e21a950d10bc3aacaf953e6"
}
`, out)
}

func TestCommand_ArgumentIndependent(t *testing.T) {
	plain := execute(t)
	verbose := execute(t, "--v", "3")

	assert.Equal(t, plain, verbose)
}
