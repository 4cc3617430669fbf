package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iprody08/inquiry-service/internal/inquiry/domain"
)

func TestRoundTripDtoEntityDto(t *testing.T) {
	original := &Inquiry{
		ID:            42,
		Status:        domain.StatusInProgress,
		Comment:       "needs follow up",
		Note:          "called twice",
		CustomerRefID: 1007,
	}

	roundTripped := EntityToDto(DtoToEntity(original))

	assert.Equal(t, original, roundTripped)
}

func TestRoundTripEntityDtoEntity(t *testing.T) {
	original := &domain.Inquiry{
		ID:            7,
		Status:        domain.StatusNew,
		Comment:       "first contact",
		Note:          "",
		CustomerRefID: 42,
	}

	roundTripped := DtoToEntity(EntityToDto(original))

	assert.Equal(t, original.ID, roundTripped.ID)
	assert.Equal(t, original.Status, roundTripped.Status)
	assert.Equal(t, original.Comment, roundTripped.Comment)
	assert.Equal(t, original.Note, roundTripped.Note)
	assert.Equal(t, original.CustomerRefID, roundTripped.CustomerRefID)
}

func TestEntitiesToDtos(t *testing.T) {
	entities := []domain.Inquiry{
		{ID: 1, Status: domain.StatusNew, Comment: "a", CustomerRefID: 10},
		{ID: 2, Status: domain.StatusClosed, Comment: "b", CustomerRefID: 20},
	}

	dtos := EntitiesToDtos(entities)

	assert.Len(t, dtos, 2)
	assert.Equal(t, uint(1), dtos[0].ID)
	assert.Equal(t, domain.StatusNew, dtos[0].Status)
	assert.Equal(t, uint(2), dtos[1].ID)
	assert.Equal(t, int64(20), dtos[1].CustomerRefID)
}

func TestEntitiesToDtosEmpty(t *testing.T) {
	dtos := EntitiesToDtos(nil)

	assert.NotNil(t, dtos)
	assert.Empty(t, dtos)
}
