// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturesFrequencyBands(t *testing.T) {
	assert.Contains(t, Features("alpha power analysis"), "alpha")
	assert.Contains(t, Features("beta oscillations"), "beta")
	assert.Contains(t, Features("gamma band activity"), "gamma")
	assert.Contains(t, Features("delta waves"), "delta")
	assert.Contains(t, Features("theta rhythm"), "theta")
}

func TestFeaturesMusicalElements(t *testing.T) {
	assert.Contains(t, Features("harmonic structure"), "harmony")
	assert.Contains(t, Features("melodic contour"), "melody")
	assert.Contains(t, Features("tempo perception"), "tempo")
}

func TestFeaturesCognitiveMetrics(t *testing.T) {
	assert.Contains(t, Features("attention and focus"), "attention")
	assert.Contains(t, Features("emotional response"), "emotion")
	assert.Contains(t, Features("arousal levels"), "arousal")
}

func TestFeaturesNoDuplicates(t *testing.T) {
	got := Features("alpha power, alpha rhythm, beta waves")
	assert.Contains(t, got, "alpha")
	assert.Contains(t, got, "beta")

	count := 0
	for _, tag := range got {
		if tag == "alpha" {
			count++
		}
	}
	assert.Equal(t, 1, count, "alpha should appear once")
}

func TestFeaturesWordBoundaries(t *testing.T) {
	// "beta" must not fire inside an unrelated word.
	assert.NotContains(t, Features("alphabetical listing"), "beta")
	assert.NotContains(t, Features("alphabetical listing"), "alpha")
}

func TestFeaturesPunctuationNormalization(t *testing.T) {
	assert.Contains(t, Features("alpha-wave analysis"), "alpha")
	assert.Contains(t, Features("beta/gamma coupling"), "beta")
	assert.Contains(t, Features("beta/gamma coupling"), "gamma")
	assert.Contains(t, Features("alpha & beta power"), "alpha")
	assert.Contains(t, Features("ALPHA POWER"), "alpha")
}

func TestFeaturesEmptyAndUnknown(t *testing.T) {
	assert.Empty(t, Features(""))
	assert.Empty(t, Features("   "))
	assert.Empty(t, Features("random unrecognized text"))
}

func TestFeaturesIdempotent(t *testing.T) {
	first := Features("alpha power, tempo, emotional valence")
	second := Features(joinComma(first))
	assert.ElementsMatch(t, first, second)
}

func joinComma(tags []string) string {
	s := ""
	for i, tag := range tags {
		if i > 0 {
			s += ", "
		}
		s += tag
	}
	return s
}
