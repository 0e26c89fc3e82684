package analysis

import (
	"testing"

	"salespulse/internal/model"
)

var allFlagNames = []string{
	model.FlagCallage, model.FlagRoutes, model.FlagProductivity,
	model.FlagLines, model.FlagTP, model.FlagSecondary, model.FlagManday,
}

func flagsFrom(mask int) model.FlagSet {
	f := model.FlagSet{}
	for i, name := range allFlagNames {
		f[name] = mask&(1<<i) != 0
	}
	return f
}

func codes(findings []model.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Code
	}
	return out
}

func hasCode(findings []model.Finding, code string) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}

// Every one of the 2^7 flag combinations must produce findings from both
// trees, with no unknown severity.
func TestNarrateTotality(t *testing.T) {
	for mask := 0; mask < 1<<len(allFlagNames); mask++ {
		flags := flagsFrom(mask)
		findings := Narrate(flags)

		if len(findings) < 2 {
			t.Fatalf("mask %07b: only %d findings, both trees must emit", mask, len(findings))
		}

		execCount, valueCount := 0, 0
		for _, f := range findings {
			switch f.Severity {
			case model.SeverityOK, model.SeverityWarning, model.SeverityError, model.SeverityInfo:
			default:
				t.Fatalf("mask %07b: unknown severity %q", mask, f.Severity)
			}
			if len(f.Code) >= 4 && f.Code[:4] == "EXEC" {
				execCount++
			} else {
				valueCount++
			}
		}
		if execCount == 0 || valueCount == 0 {
			t.Errorf("mask %07b: exec=%d value=%d findings, both trees must contribute", mask, execCount, valueCount)
		}
	}
}

func TestExecutionChain(t *testing.T) {
	tests := []struct {
		name     string
		flags    model.FlagSet
		expected []string
	}{
		{
			"callage low, routes fine",
			model.FlagSet{model.FlagCallage: false, model.FlagRoutes: true},
			[]string{CodeExecCallageLow, CodeExecRoutesOK},
		},
		{
			"callage low, mandays consumed",
			model.FlagSet{model.FlagCallage: false, model.FlagManday: true},
			[]string{CodeExecCallageLow, CodeExecMandaysUsed},
		},
		{
			"callage low, nothing to blame",
			model.FlagSet{},
			[]string{CodeExecCallageLow, CodeExecDeployment},
		},
		{
			"productivity lagging",
			model.FlagSet{model.FlagCallage: true},
			[]string{CodeExecCallageOK, CodeExecProductivityLag},
		},
		{
			"healthy through secondary",
			model.FlagSet{model.FlagCallage: true, model.FlagProductivity: true, model.FlagSecondary: true},
			[]string{CodeExecCallageOK, CodeExecProductivityOK, CodeExecSecondaryOK},
		},
		{
			"secondary gap with lines fine",
			model.FlagSet{model.FlagCallage: true, model.FlagProductivity: true, model.FlagLines: true},
			[]string{CodeExecCallageOK, CodeExecProductivityOK, CodeExecSecondaryGap, CodeExecProductMix},
		},
		{
			"secondary gap with lines low",
			model.FlagSet{model.FlagCallage: true, model.FlagProductivity: true},
			[]string{CodeExecCallageOK, CodeExecProductivityOK, CodeExecSecondaryGap, CodeExecLinesLow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codes(executionChain(tt.flags))
			if len(got) != len(tt.expected) {
				t.Fatalf("executionChain = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("executionChain = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestValueChain(t *testing.T) {
	tests := []struct {
		name     string
		flags    model.FlagSet
		expected []string
	}{
		{
			"lines and tp and secondary",
			model.FlagSet{model.FlagLines: true, model.FlagTP: true, model.FlagSecondary: true},
			[]string{CodeValueLinesOK, CodeValueTPOK, CodeValueMixBroad, CodeValueSecondaryOK},
		},
		{
			"lines and tp, secondary weak",
			model.FlagSet{model.FlagLines: true, model.FlagTP: true},
			[]string{CodeValueLinesOK, CodeValueTPOK, CodeValueMixBroad, CodeValueSecondaryWeak},
		},
		{
			"many lines, low value",
			model.FlagSet{model.FlagLines: true},
			[]string{CodeValueLinesOK, CodeValueTPWeakVolume, CodeValueVolumeNoValue},
		},
		{
			"few lines, price carries",
			model.FlagSet{model.FlagTP: true},
			[]string{CodeValueLinesLow, CodeValueTPOK, CodeValuePriceCarries},
		},
		{
			"weak selling",
			model.FlagSet{},
			[]string{CodeValueLinesLow, CodeValueTPWeakThin, CodeValueWeakSelling},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codes(valueChain(tt.flags))
			if len(got) != len(tt.expected) {
				t.Fatalf("valueChain = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("valueChain = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

// The shortfall branch is terminal: flags below it must not influence output.
func TestCallageShortfallIsTerminal(t *testing.T) {
	flags := model.FlagSet{
		model.FlagCallage: false, model.FlagRoutes: true,
		model.FlagProductivity: true, model.FlagSecondary: true,
	}

	findings := executionChain(flags)

	if hasCode(findings, CodeExecProductivityOK) || hasCode(findings, CodeExecSecondaryOK) {
		t.Errorf("shortfall branch consulted downstream flags: %v", codes(findings))
	}
}

// Severity of the weak-TP terminal depends on the branch: a warning when
// volume is there, an error when lines are thin too.
func TestTPSeverityDependsOnLines(t *testing.T) {
	withLines := valueChain(model.FlagSet{model.FlagLines: true})
	if withLines[1].Severity != model.SeverityWarning {
		t.Errorf("weak TP with lines = %v, want warning", withLines[1].Severity)
	}

	withoutLines := valueChain(model.FlagSet{})
	if withoutLines[1].Severity != model.SeverityError {
		t.Errorf("weak TP without lines = %v, want error", withoutLines[1].Severity)
	}
}

func TestNarrateRunsBothTrees(t *testing.T) {
	findings := Narrate(model.FlagSet{model.FlagCallage: true, model.FlagProductivity: true, model.FlagSecondary: true})

	if !hasCode(findings, CodeExecSecondaryOK) {
		t.Error("execution chain findings missing")
	}
	if !hasCode(findings, CodeValueLinesLow) {
		t.Error("value chain findings missing")
	}

	// Execution-chain findings come first.
	if findings[0].Code != CodeExecCallageOK {
		t.Errorf("first finding = %s, want %s", findings[0].Code, CodeExecCallageOK)
	}
}
