package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadcentral/internal/entity"
)

func TestListForProspecteur_NamedViewMapsToStatus(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewManageProspectsUseCase(prospects, new(MockUserRepository))

	prospects.On("List", mock.Anything, ProspectFilter{
		Status:        entity.ProspectARappeler,
		ProspecteurID: "user-1",
	}).Return([]entity.Prospect{{ID: "p1"}}, nil)

	out, err := uc.ListForProspecteur(context.Background(), "user-1", "a_rappeler")

	assert.Nil(t, err)
	assert.Len(t, out, 1)
	prospects.AssertExpectations(t)
}

func TestListForProspecteur_UnknownViewReturnsWholeOwnedSet(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewManageProspectsUseCase(prospects, new(MockUserRepository))

	prospects.On("List", mock.Anything, ProspectFilter{ProspecteurID: "user-1"}).Return([]entity.Prospect{}, nil)

	_, err := uc.ListForProspecteur(context.Background(), "user-1", "liste-inconnue")

	assert.Nil(t, err)
	prospects.AssertExpectations(t)
}

func TestListAll_ExpandsOwnerOnce(t *testing.T) {
	prospects := new(MockProspectRepository)
	users := new(MockUserRepository)
	uc := NewManageProspectsUseCase(prospects, users)

	owner := "u1"
	prospects.On("List", mock.Anything, ProspectFilter{}).Return([]entity.Prospect{
		{ID: "p1", ProspecteurID: &owner},
		{ID: "p2", ProspecteurID: &owner},
		{ID: "p3"},
	}, nil)
	users.On("FindByID", mock.Anything, "u1").Return(&entity.User{
		ID: "u1", Nom: "Martin", Prenom: "Claire", Email: "claire@example.com", Role: entity.RoleProspecteur,
	}, nil).Once()

	out, err := uc.ListAll(context.Background(), "")

	assert.Nil(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, "Martin", out[0].Prospecteur.Nom)
	assert.Equal(t, out[0].Prospecteur, out[1].Prospecteur)
	assert.Nil(t, out[2].Prospecteur)
	users.AssertExpectations(t)
}

func TestListAll_InvalidStatusRejected(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewManageProspectsUseCase(prospects, new(MockUserRepository))

	_, err := uc.ListAll(context.Background(), "perdu")

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
	prospects.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUpdateProspect_EmptyPatchRejected(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewManageProspectsUseCase(prospects, new(MockUserRepository))

	err := uc.Update(context.Background(), "p1", entity.ProspectPatch{})

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
	prospects.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProspect_UnknownIDIsNotFound(t *testing.T) {
	prospects := new(MockProspectRepository)
	uc := NewManageProspectsUseCase(prospects, new(MockUserRepository))

	nom := "Nouveau Nom"
	prospects.On("UpdateDetails", mock.Anything, "ghost", mock.Anything).Return(entity.ErrProspectNotFound)

	err := uc.Update(context.Background(), "ghost", entity.ProspectPatch{Nom: &nom})

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, domainErr.Code)
}

func TestUpdateProspecteurStatus(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewManageProspectsUseCase(new(MockProspectRepository), users)

	users.On("FindByID", mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil)
	users.On("UpdateStatus", mock.Anything, "u1", entity.UserInactive).Return(nil)

	assert.Nil(t, uc.UpdateProspecteurStatus(context.Background(), "u1", "inactive"))

	err := uc.UpdateProspecteurStatus(context.Background(), "u1", "banni")
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
}
