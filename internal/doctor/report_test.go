package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cargowrap/internal/model"
)

func sampleResolution() *model.Resolution {
	return &model.Resolution{
		ManifestDir: "/src/proj/crates/core",
		VCSRoot:     "/src/proj",
		TargetDir:   "/src/proj-crates-core-target",
		Provenance:  model.ProvenanceComputed,
		Warnings:    []string{"symlink run.bin points at executable /other/debug/run but /other contains no .fingerprint; ignoring"},
		Steps: []model.Step{
			{Kind: model.StepManifestProbe, Path: "/src/proj/crates/core", OK: true},
			{Kind: model.StepVCSProbe, Path: "/src/proj", OK: true},
			{Kind: model.StepSymlinkRejected, Path: "/src/proj/crates/core/run.bin", Detail: "broken symlink"},
			{Kind: model.StepComputed, Path: "/src/proj-crates-core-target", OK: true},
		},
	}
}

func TestGenerateReport(t *testing.T) {
	t.Run("summary names all three paths and provenance", func(t *testing.T) {
		report := GenerateReport(sampleResolution(), false)
		assert.Contains(t, report, "/src/proj/crates/core")
		assert.Contains(t, report, "/src/proj")
		assert.Contains(t, report, "/src/proj-crates-core-target")
		assert.Contains(t, report, "computed")
		assert.Contains(t, report, "Warnings:")
		assert.NotContains(t, report, "Steps:")
	})

	t.Run("verbose adds the step trail", func(t *testing.T) {
		report := GenerateReport(sampleResolution(), true)
		assert.Contains(t, report, "Steps:")
		assert.Contains(t, report, "manifest-probe")
		assert.Contains(t, report, "broken symlink")
	})

	t.Run("unresolved fields are marked", func(t *testing.T) {
		report := GenerateReport(&model.Resolution{ManifestDir: "/src/proj"}, false)
		assert.Contains(t, report, "(not resolved)")
	})
}

func TestStepIcon(t *testing.T) {
	assert.Equal(t, model.IconAccepted, StepIcon(model.Step{Kind: model.StepSymlinkAccepted, OK: true}))
	assert.Equal(t, model.IconRejected, StepIcon(model.Step{Kind: model.StepSymlinkRejected}))
	assert.Equal(t, model.IconComputed, StepIcon(model.Step{Kind: model.StepComputed, OK: true}))
	assert.Equal(t, model.IconOK, StepIcon(model.Step{Kind: model.StepManifestProbe, OK: true}))
	assert.Equal(t, model.IconRejected, StepIcon(model.Step{Kind: model.StepVCSProbe}))
}
