package roles

import (
	"testing"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *Registry
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = NewRegistry()
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) TestDefaultRoles() {
	s.Equal([]models.Role{
		models.RoleMafia,
		models.RolePolice,
		models.RoleDoctor,
		models.RoleLikend,
		models.RoleCitizen,
	}, s.registry.Roles())

	s.True(s.registry.IsMafia(models.RoleMafia))
	s.False(s.registry.IsMafia(models.RolePolice))
	s.Equal(models.ActionSave, s.registry.ActionOf(models.RoleDoctor))
	s.Equal(models.ActionNone, s.registry.ActionOf(models.RoleCitizen))
}

func (s *RegistryTestSuite) TestParseIsExactAndCaseInsensitive() {
	role, err := s.registry.Parse("  MaFiA ")
	s.Require().NoError(err)
	s.Equal(models.RoleMafia, role)

	_, err = s.registry.Parse("maf")
	s.ErrorIs(err, ErrUnknownRole)

	_, err = s.registry.Parse("mafia boss")
	s.ErrorIs(err, ErrUnknownRole)

	_, err = s.registry.Parse("")
	s.ErrorIs(err, ErrUnknownRole)
}

func (s *RegistryTestSuite) TestRegisterCitizenLike() {
	s.Require().NoError(s.registry.RegisterCitizenLike("Baker"))

	role, err := s.registry.Parse("baker")
	s.Require().NoError(err)

	caps, ok := s.registry.Lookup(role)
	s.Require().True(ok)
	s.Equal(models.FactionCitizens, caps.Faction)
	s.False(caps.HasNightAction())

	s.ErrorIs(s.registry.RegisterCitizenLike("BAKER"), ErrRoleExists)
	s.ErrorIs(s.registry.RegisterCitizenLike("mafia"), ErrRoleExists)
}

func (s *RegistryTestSuite) TestRegisterRejectsBadNames() {
	s.ErrorIs(s.registry.RegisterCitizenLike("   "), ErrInvalidRoleName)
	s.ErrorIs(s.registry.RegisterCitizenLike("a:b"), ErrInvalidRoleName)
	s.ErrorIs(s.registry.RegisterCitizenLike("a,b"), ErrInvalidRoleName)
}

func (s *RegistryTestSuite) TestRolesReturnsCopy() {
	list := s.registry.Roles()
	list[0] = "changed"
	s.Equal(models.RoleMafia, s.registry.Roles()[0])
}
