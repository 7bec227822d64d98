package followup

// Preset follow-up styles and the default context notes each one seeds the
// composer with. Unknown presets (including "Custom / Freestyle") map to no
// default, leaving the caller's notes as-is.
const (
	PresetCustom       = "Custom / Freestyle"
	PresetPricingQuote = "After Pricing Quote"
	PresetSampleCheck  = "Check-In on Samples"
	PresetNewDrop      = "New Drop / Fresh Batch"
	PresetReEngage     = "Re-Engage Cold Lead"
)

var presetNotes = map[string]string{
	PresetPricingQuote: "Client asked about pricing — check in and answer questions.",
	PresetSampleCheck:  "Follow up and ask how the sample performed.",
	PresetNewDrop:      "Notify the client about fresh inventory.",
	PresetReEngage:     "Client went quiet — reopen the convo casually.",
}

func Presets() []string {
	return []string{PresetCustom, PresetPricingQuote, PresetSampleCheck, PresetNewDrop, PresetReEngage}
}

func PresetNotes(preset string) string {
	return presetNotes[preset]
}
