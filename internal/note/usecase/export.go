package usecase

import (
	"context"
	"fmt"

	"readshelf-share/internal/export"
	"readshelf-share/internal/note"
)

// Export resolves a share path and presents its printable document.
func (uc *implUseCase) Export(ctx context.Context, input note.ExportInput) (note.ExportOutput, error) {
	resolved, err := uc.Resolve(ctx, note.ResolveInput{Category: input.Category, Slug: input.Slug})
	if err != nil {
		return note.ExportOutput{}, err
	}
	if input.Presenter == nil {
		return note.ExportOutput{}, fmt.Errorf("export: no presenter")
	}

	n := resolved.Note
	doc, outcome, err := export.NewExport(input.Presenter).Run(ctx, &n, uc.exportOptions())
	if err != nil {
		uc.l.Errorf(ctx, "Export: failed to export note %s: %v", n.ID, err)
		return note.ExportOutput{}, err
	}

	switch outcome {
	case export.OutcomeBlocked:
		uc.l.Warnf(ctx, "Export: presentation of note %s was blocked", n.ID)
	case export.OutcomeCancelled:
		uc.l.Infof(ctx, "Export: presentation of note %s was cancelled", n.ID)
	}

	return note.ExportOutput{
		Note:     n,
		Document: doc,
		Outcome:  outcome,
	}, nil
}
