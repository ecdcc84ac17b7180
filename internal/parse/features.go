// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
)

// featureVocabulary maps each canonical feature tag to its keyword
// variants, grouped the way the curated dataset uses them: EEG frequency
// bands, cognitive and emotional metrics, musical elements, brain
// activity metrics, and signal processing terms. Multi-word variants
// match by substring; single-word variants match on word boundaries so
// that e.g. "beta" does not fire inside "alphabetical".
var featureVocabulary = []struct {
	tag      string
	keywords []string
}{
	{"delta", []string{"delta", "delta power", "delta band", "δ", "δ-wave"}},
	{"theta", []string{"theta", "theta power", "theta band", "θ", "θ-wave"}},
	{"alpha", []string{"alpha", "alpha power", "alpha band", "alpha rhythm", "alpha rhythms", "alpha-2", "alpha peak", "alpha blocking", "alpha-wave", "α", "α-wave", "α-rhythm"}},
	{"beta", []string{"beta", "beta power", "beta band", "beta 1", "beta 2", "beta 3", "β", "β-power", "β-wave"}},
	{"gamma", []string{"gamma", "gamma band", "gamma-band", "30–50 hz", "γ", "γ-wave"}},
	{"attention", []string{"attention", "attentiveness", "temporal attention"}},
	{"emotion", []string{"emotion", "emotional", "emotional arousal", "emotional valence", "affect", "affective", "pleasantness", "happiness", "sadness", "fear", "anger", "tenderness"}},
	{"valence", []string{"valence", "pleasantness", "happiness", "sadness"}},
	{"arousal", []string{"arousal", "energy", "activation"}},
	{"tempo", []string{"tempo", "beat", "pulse", "rhythm", "bpm"}},
	{"harmony", []string{"harmony", "harmonic", "chord", "chords", "diatonic", "nondiatonic", "cadence", "tonality"}},
	{"melody", []string{"melody", "melodic", "contour", "interval", "pitch", "scale"}},
	{"coherence", []string{"coherence", "phase synchrony", "connectivity", "coupling", "inter-subject correlation", "isc", "src"}},
	{"power", []string{"power", "amplitude", "activation", "band power", "cortical activation", "activity"}},
	{"erp", []string{"erp", "event-related", "n100", "p200", "p300", "n400", "p3a", "p3b", "n5", "mmn", "eran", "cps"}},
	{"synchronization", []string{"inter-subject correlation", "isc", "src", "neural synchrony", "entrainment", "frequency tagging"}},
	{"expectancy", []string{"expectancy", "expectation", "surprise", "prediction", "violation"}},
	{"imagery", []string{"imagery", "imagination", "mental"}},
	{"envelope", []string{"envelope", "acoustic envelope", "amplitude envelope", "rms", "spectral flux"}},
	{"spectral", []string{"spectral", "spectrum", "frequency", "spectrogram", "spectral flux", "zero-crossing"}},
	{"localization", []string{"hemispheric", "lateralization", "frontal", "central", "parietal", "temporal", "occipital"}},
}

// compiledCategory holds one tag's matchers, split by matching strategy.
type compiledCategory struct {
	tag    string
	substr []string         // multi-word or non-ASCII variants
	words  []*regexp.Regexp // single-word variants with \b anchors
}

var compiledVocabulary []compiledCategory

func init() {
	for _, fc := range featureVocabulary {
		c := compiledCategory{tag: fc.tag}
		for _, kw := range fc.keywords {
			if strings.Contains(kw, " ") || !isASCII(kw) {
				c.substr = append(c.substr, kw)
				continue
			}
			c.words = append(c.words, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		compiledVocabulary = append(compiledVocabulary, c)
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

var featureCleaner = strings.NewReplacer(
	"(", " ", ")", " ",
	"+", " ", "&", " ",
	";", ",", "/", ",",
	"-", " ", "–", " ", "—", " ",
)

var spaceRunRE = regexp.MustCompile(`\s+`)

// Features maps a free-text feature description onto the canonical tag
// vocabulary. Each tag appears at most once, in vocabulary order; text
// matching no variant contributes nothing. Idempotent and total.
func Features(s string) []string {
	tags := []string{}
	if strings.TrimSpace(s) == "" {
		return tags
	}

	clean := strings.ToLower(s)
	clean = featureCleaner.Replace(clean)
	clean = strings.TrimSpace(spaceRunRE.ReplaceAllString(clean, " "))

	for _, c := range compiledVocabulary {
		matched := false
		for _, kw := range c.substr {
			if strings.Contains(clean, kw) {
				matched = true
				break
			}
		}
		if !matched {
			for _, re := range c.words {
				if re.MatchString(clean) {
					matched = true
					break
				}
			}
		}
		if matched {
			tags = append(tags, c.tag)
		}
	}
	return tags
}
