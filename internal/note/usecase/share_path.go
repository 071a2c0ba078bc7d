package usecase

import (
	"readshelf-share/internal/model"
	"readshelf-share/internal/note"
	"readshelf-share/internal/slug"
)

// SharePath builds the public share path for a note.
func (uc *implUseCase) SharePath(input note.SharePathInput) (note.SharePathOutput, error) {
	category, ok := model.ParseCategory(input.Category)
	if !ok {
		return note.SharePathOutput{}, note.ErrInvalidCategory
	}
	if input.ID == "" {
		return note.SharePathOutput{}, note.ErrNotFound
	}
	return note.SharePathOutput{
		Path: slug.SharePath(string(category), input.Title, input.ID),
	}, nil
}
