package analysis

import "salespulse/internal/model"

// Finding codes. Each code identifies one decision-tree terminal so that
// every message is independently testable and stable for the frontend.
const (
	CodeExecCallageOK       = "EXEC_CALLAGE_OK"
	CodeExecCallageLow      = "EXEC_CALLAGE_LOW"
	CodeExecRoutesOK        = "EXEC_ROUTES_OK"
	CodeExecMandaysUsed     = "EXEC_MANDAYS_USED"
	CodeExecDeployment      = "EXEC_DEPLOYMENT"
	CodeExecProductivityOK  = "EXEC_PRODUCTIVITY_OK"
	CodeExecProductivityLag = "EXEC_PRODUCTIVITY_LAG"
	CodeExecSecondaryOK     = "EXEC_SECONDARY_OK"
	CodeExecSecondaryGap    = "EXEC_SECONDARY_GAP"
	CodeExecProductMix      = "EXEC_PRODUCT_MIX"
	CodeExecLinesLow        = "EXEC_LINES_LOW"

	CodeValueLinesOK       = "VALUE_LINES_OK"
	CodeValueLinesLow      = "VALUE_LINES_LOW"
	CodeValueTPOK          = "VALUE_TP_OK"
	CodeValueMixBroad      = "VALUE_MIX_BROAD"
	CodeValueSecondaryOK   = "VALUE_SECONDARY_OK"
	CodeValueSecondaryWeak = "VALUE_SECONDARY_WEAK"
	CodeValueTPWeakVolume  = "VALUE_TP_WEAK_VOLUME"
	CodeValueVolumeNoValue = "VALUE_VOLUME_NO_VALUE"
	CodeValuePriceCarries  = "VALUE_PRICE_CARRIES"
	CodeValueTPWeakThin    = "VALUE_TP_WEAK_THIN"
	CodeValueWeakSelling   = "VALUE_WEAK_SELLING"
)

func finding(sev model.Severity, code, msg string) model.Finding {
	return model.Finding{Severity: sev, Code: code, Message: msg}
}

// Narrate walks both root-cause trees over the flag set and returns the
// combined ordered findings. The execution chain runs first, the value chain
// always runs after it; the two trees share no state.
func Narrate(flags model.FlagSet) []model.Finding {
	out := executionChain(flags)
	return append(out, valueChain(flags)...)
}

// executionChain is the execution root-cause tree: callage is the root, a
// shortfall is traced back through routes and manday utilization, a healthy
// callage is traced forward through productivity and secondary.
func executionChain(f model.FlagSet) []model.Finding {
	if !f[model.FlagCallage] {
		out := []model.Finding{finding(model.SeverityError, CodeExecCallageLow, "Unique callage is below threshold.")}
		return append(out, nodeCallageShortfall(f))
	}

	out := []model.Finding{finding(model.SeverityOK, CodeExecCallageOK, "Unique callage is on target.")}

	if !f[model.FlagProductivity] {
		return append(out, finding(model.SeverityWarning, CodeExecProductivityLag, "Callage is on target but productivity is not."))
	}
	out = append(out, finding(model.SeverityOK, CodeExecProductivityOK, "Productivity is on target."))

	if f[model.FlagSecondary] {
		return append(out, finding(model.SeverityOK, CodeExecSecondaryOK, "Secondary is on target, primary is expected to follow."))
	}
	out = append(out, finding(model.SeverityWarning, CodeExecSecondaryGap, "Productivity is on target but secondary is lacking."))

	if f[model.FlagLines] {
		return append(out, finding(model.SeverityInfo, CodeExecProductMix, "Lines per outlet is on target, check the product mix."))
	}
	return append(out, finding(model.SeverityError, CodeExecLinesLow, "Lines per outlet is under threshold."))
}

// nodeCallageShortfall isolates why callage fell short. Terminal: no flag
// below this node is consulted.
func nodeCallageShortfall(f model.FlagSet) model.Finding {
	switch {
	case f[model.FlagRoutes]:
		return finding(model.SeverityInfo, CodeExecRoutesOK, "Routes are on target, the issue is isolated to callage.")
	case f[model.FlagManday]:
		return finding(model.SeverityInfo, CodeExecMandaysUsed, "Mandays are fully utilized, execution may be poor.")
	default:
		return finding(model.SeverityError, CodeExecDeployment, "Check mandays or manpower deployment.")
	}
}

// valueChain is the value root-cause tree: lines billed and price realized
// explain where secondary value comes from.
func valueChain(f model.FlagSet) []model.Finding {
	if f[model.FlagLines] {
		out := []model.Finding{finding(model.SeverityOK, CodeValueLinesOK, "Lines per outlet is on target.")}
		return append(out, nodeTPWithLines(f)...)
	}
	out := []model.Finding{finding(model.SeverityError, CodeValueLinesLow, "Lines per outlet is under threshold.")}
	return append(out, nodeTPWithoutLines(f)...)
}

func nodeTPWithLines(f model.FlagSet) []model.Finding {
	if !f[model.FlagTP] {
		return []model.Finding{
			finding(model.SeverityWarning, CodeValueTPWeakVolume, "TP per outlet is weak."),
			finding(model.SeverityInfo, CodeValueVolumeNoValue, "Many lines billed but the total value is low."),
		}
	}
	out := []model.Finding{
		finding(model.SeverityOK, CodeValueTPOK, "TP per outlet is on target."),
		finding(model.SeverityInfo, CodeValueMixBroad, "Few lines at a high price, or many lines at a reasonable price."),
	}
	if f[model.FlagSecondary] {
		return append(out, finding(model.SeverityOK, CodeValueSecondaryOK, "Secondary is good, primary should follow."))
	}
	return append(out, finding(model.SeverityWarning, CodeValueSecondaryWeak, "TP is on target but secondary is weak."))
}

func nodeTPWithoutLines(f model.FlagSet) []model.Finding {
	if f[model.FlagTP] {
		return []model.Finding{
			finding(model.SeverityOK, CodeValueTPOK, "TP per outlet is on target."),
			finding(model.SeverityInfo, CodeValuePriceCarries, "Few lines at a high price, the total is reasonable."),
		}
	}
	return []model.Finding{
		finding(model.SeverityError, CodeValueTPWeakThin, "TP per outlet is weak."),
		finding(model.SeverityInfo, CodeValueWeakSelling, "Few lines at a low price, weak selling."),
	}
}
