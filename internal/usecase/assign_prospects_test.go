package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadcentral/internal/entity"
)

func TestAssignProspects_RoundRobinByPosition(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewAssignProspectsUseCase(prospects)

	// 5 prospects, 2 prospecteurs: A,B,A,B,A
	prospects.On("Assign", mock.Anything, "p1", "A").Return(nil)
	prospects.On("Assign", mock.Anything, "p2", "B").Return(nil)
	prospects.On("Assign", mock.Anything, "p3", "A").Return(nil)
	prospects.On("Assign", mock.Anything, "p4", "B").Return(nil)
	prospects.On("Assign", mock.Anything, "p5", "A").Return(nil)

	message, err := uc.Execute(context.Background(), AssignInput{
		ProspectIDs:    []string{"p1", "p2", "p3", "p4", "p5"},
		ProspecteurIDs: []string{"A", "B"},
	})

	assert.Nil(t, err)
	assert.Equal(t, "5 prospects attribués", message)
	prospects.AssertExpectations(t)
}

func TestAssignProspects_SingleProspecteurGetsEverything(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewAssignProspectsUseCase(prospects)

	prospects.On("Assign", mock.Anything, mock.Anything, "A").Return(nil).Times(3)

	message, err := uc.Execute(context.Background(), AssignInput{
		ProspectIDs:    []string{"p1", "p2", "p3"},
		ProspecteurIDs: []string{"A"},
	})

	assert.Nil(t, err)
	assert.Equal(t, "3 prospects attribués", message)
	prospects.AssertExpectations(t)
}

func TestAssignProspects_EmptyProspecteurListRejected(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewAssignProspectsUseCase(prospects)

	_, err := uc.Execute(context.Background(), AssignInput{
		ProspectIDs:    []string{"p1"},
		ProspecteurIDs: []string{},
	})

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
	prospects.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignProspects_EmptyProspectListIsNoOp(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewAssignProspectsUseCase(prospects)

	message, err := uc.Execute(context.Background(), AssignInput{
		ProspectIDs:    []string{},
		ProspecteurIDs: []string{"A"},
	})

	assert.Nil(t, err)
	assert.Equal(t, "0 prospects attribués", message)
	prospects.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
}

func TestReassign_MovesProspectToNewOwner(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewAssignProspectsUseCase(prospects)

	owner := "old-owner"
	prospects.On("FindByID", mock.Anything, "p1").Return(&entity.Prospect{
		ID:            "p1",
		Nom:           "Garage Petit",
		Secteur:       "Automobile",
		Telephone:     "0611223344",
		Status:        entity.ProspectRefus,
		ProspecteurID: &owner,
	}, nil)
	prospects.On("Assign", mock.Anything, "p1", "new-owner").Return(nil)

	err := uc.Reassign(context.Background(), "p1", "new-owner")

	assert.Nil(t, err)
	prospects.AssertExpectations(t)
}

func TestReassign_UnknownProspectIsNotFound(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewAssignProspectsUseCase(prospects)

	prospects.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrProspectNotFound)

	err := uc.Reassign(context.Background(), "ghost", "new-owner")

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, domainErr.Code)
}

func TestReassign_MissingNewOwnerRejected(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewAssignProspectsUseCase(prospects)

	err := uc.Reassign(context.Background(), "p1", "")

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
}
