package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallScenario() ScenarioConfig {
	return NewScenarioConfig("small", 20, 30, 5)
}

func TestRunScenario_ProducesResultAndSample(t *testing.T) {
	cfg := NewSimConfig(42, 0)
	result, sample, err := RunScenario(smallScenario(), 1.0, VariantListHeap, cfg)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, sample.Failed)
	assert.Empty(t, sample.Err)
	assert.Equal(t, "small", sample.Scenario)
	assert.Equal(t, 1.0, sample.Scale)
	assert.Equal(t, VariantListHeap, sample.Variant)
	assert.Greater(t, sample.Elapsed.Nanoseconds(), int64(0))

	// Partition property holds end to end.
	assert.Equal(t, 30, result.AllocatedCount()+len(result.Unallocated))
	assert.Len(t, result.Routes, 5)
}

func TestRunScenario_DeterministicAcrossRuns(t *testing.T) {
	cfg := NewSimConfig(7, 0)
	first, _, err := RunScenario(smallScenario(), 1.25, VariantMatrix, cfg)
	require.NoError(t, err)
	second, _, err := RunScenario(smallScenario(), 1.25, VariantMatrix, cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunScenario_VariantsAgreeOnAllocation(t *testing.T) {
	cfg := NewSimConfig(42, 0)
	baseline, _, err := RunScenario(smallScenario(), 1.0, VariantListScan, cfg)
	require.NoError(t, err)

	for _, variant := range Variants()[1:] {
		result, _, err := RunScenario(smallScenario(), 1.0, variant, cfg)
		require.NoError(t, err)
		assert.Equal(t, baseline, result, "variant %s allocation differs", variant)
	}
}

func TestRunScenario_UnknownVariant_RecordsFailedSample(t *testing.T) {
	cfg := NewSimConfig(42, 0)
	result, sample, err := RunScenario(smallScenario(), 1.0, Variant("bogus"), cfg)
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Nil(t, result)
	assert.True(t, sample.Failed)
	assert.NotEmpty(t, sample.Err)
}

func TestRunScenario_InvalidScenario_RecordsFailedSample(t *testing.T) {
	cfg := NewSimConfig(42, 0)
	bad := ScenarioConfig{Name: "bad", NodeCount: 0, DeliveryCount: 10, TruckCount: 2}
	_, sample, err := RunScenario(bad, 1.0, VariantListScan, cfg)
	assert.ErrorIs(t, err, ErrInvalidScenario)
	assert.True(t, sample.Failed)
}

func TestRunScenario_InvalidScale_RecordsFailedSample(t *testing.T) {
	cfg := NewSimConfig(42, 0)
	_, sample, err := RunScenario(smallScenario(), -1.0, VariantListScan, cfg)
	assert.ErrorIs(t, err, ErrInvalidScale)
	assert.True(t, sample.Failed)
}

func TestRunBenchmarkMatrix_SampleCount(t *testing.T) {
	scenarios := []ScenarioConfig{
		smallScenario(),
		NewScenarioConfig("tiny", 10, 5, 2),
	}
	scales := []float64{0.5, 1.0, 1.5}
	samples := RunBenchmarkMatrix(scenarios, scales, NewSimConfig(42, 0))
	assert.Len(t, samples, len(scenarios)*len(scales)*len(Variants()))

	for _, s := range samples {
		assert.False(t, s.Failed, "sample %s/%.2f/%s unexpectedly failed: %s", s.Scenario, s.Scale, s.Variant, s.Err)
	}
}

// A broken scenario records its failures but never aborts the rest of the
// matrix: the sample count stays scenarios x scales x variants.
func TestRunBenchmarkMatrix_FailuresRecordedNotDropped(t *testing.T) {
	scenarios := []ScenarioConfig{
		{Name: "broken", NodeCount: -1, DeliveryCount: 1, TruckCount: 1},
		smallScenario(),
	}
	scales := []float64{1.0}
	samples := RunBenchmarkMatrix(scenarios, scales, NewSimConfig(42, 0))
	require.Len(t, samples, 2*len(Variants()))

	report := NewReport()
	report.AddAll(samples)
	assert.Equal(t, len(Variants()), report.Failures())
	for _, s := range samples[:len(Variants())] {
		assert.True(t, s.Failed)
		assert.Equal(t, "broken", s.Scenario)
	}
	for _, s := range samples[len(Variants()):] {
		assert.False(t, s.Failed)
	}
}
