package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akalin/gobch/errorcode"
	"github.com/stretchr/testify/require"
)

func runForTest(args ...string) (errorcode.Errorcode, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"bch"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestInfo(t *testing.T) {
	code, stdout, _ := runForTest("info", "-n", "15", "-b", "1", "-d", "5")
	require.Equal(t, errorcode.Success, code)
	require.Contains(t, stdout, "BCH(15,7,5)")
	require.Contains(t, stdout, "GF(2^4) mod x^4 + x + 1")
	require.Contains(t, stdout, "0x1d1")
	require.Contains(t, stdout, "corrects:  2 errors")

	code, stdout, _ = runForTest("info", "-n", "15", "-b", "5", "-d", "3")
	require.Equal(t, errorcode.Success, code)
	require.Contains(t, stdout, "BCH(15,9,3)")
	require.Contains(t, stdout, "corrects:  1 errors")
}

func TestEncode(t *testing.T) {
	code, stdout, _ := runForTest("e", "1010101")
	require.Equal(t, errorcode.Success, code)
	require.Equal(t, "101010111100101\n", stdout)
}

func TestEncodePad(t *testing.T) {
	code, stdout, _ := runForTest("encode", "--pad", "1010101101")
	require.Equal(t, errorcode.Success, code)
	require.Equal(t, "101010111100101\n101000011010010\n", stdout)

	code, _, _ = runForTest("encode", "1010101101")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)
}

func TestHelp(t *testing.T) {
	for _, args := range [][]string{
		{"-h"},
		{"--help"},
		{"encode", "-h"},
		{"decode", "--help"},
	} {
		code, _, stderr := runForTest(args...)
		require.Equal(t, errorcode.Success, code, "args=%v", args)
		if args[0] == "encode" || args[0] == "decode" {
			require.Equal(t, 1, strings.Count(stderr, "Usage:"), "args=%v", args)
			require.Contains(t, stderr, "--pad")
		}
	}
}

func TestDecodeWithoutFirstRoot(t *testing.T) {
	code, stdout, _ := runForTest("d", "-b", "5", "-d", "3", "--flip", "3", "101010101100001")
	require.Equal(t, errorcode.Corrected, code)
	require.Equal(t, "101010101\nCorrected positions: [3]\n", stdout)
}

func TestDecode(t *testing.T) {
	code, stdout, _ := runForTest("decode", "101010111100101")
	require.Equal(t, errorcode.Success, code)
	require.Equal(t, "1010101\n", stdout)

	code, stdout, _ = runForTest("decode", "--flip", "2,5", "101010111100101")
	require.Equal(t, errorcode.Corrected, code)
	require.Equal(t, "1010101\nCorrected positions: [2 5]\n", stdout)

	code, stdout, _ = runForTest("d", "--flip", "0,1,3", "101010111100101")
	require.Equal(t, errorcode.Uncorrectable, code)
	require.Empty(t, stdout)
}

func TestErrors(t *testing.T) {
	code, _, _ := runForTest()
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)

	code, _, _ = runForTest("bogus")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)

	code, _, _ = runForTest("encode")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)

	code, _, _ = runForTest("encode", "10101")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)

	code, _, _ = runForTest("encode", "10201")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)

	code, _, _ = runForTest("decode", "--flip", "15", "101010111100101")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)

	code, _, _ = runForTest("info", "-n", "16")
	require.Equal(t, errorcode.ConfigurationError, code)

	code, _, stderr := runForTest("info", "--bogus")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)
	require.Contains(t, stderr, "unknown flag: --bogus")
	require.Equal(t, 1, strings.Count(stderr, "Usage:"))
}
