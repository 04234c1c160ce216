package customanalyzer

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOsExitInMainAnalyzer(t *testing.T) {
	// analysistest.Run applies OsExitInMainAnalyzer to the testdata packages and checks the want comments
	analysistest.Run(t, analysistest.TestData(), OsExitInMainAnalyzer, "./...")
}
