package narration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mafia/internal/models"
	shuffleMocks "github.com/KirkDiggler/mafia/internal/shuffle/mocks"
)

type NarrationServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockShuffler *shuffleMocks.MockShuffler
	service      Service
	ctx          context.Context
}

func (s *NarrationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockShuffler = shuffleMocks.NewMockShuffler(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{Shuffler: s.mockShuffler})
	s.Require().NoError(err)
	s.service = svc
}

func (s *NarrationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNarrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NarrationServiceTestSuite))
}

func (s *NarrationServiceTestSuite) TestNewRequiresShuffler() {
	_, err := New(&Config{})
	s.ErrorIs(err, ErrNilShuffler)

	_, err = New(nil)
	s.Error(err)
}

func (s *NarrationServiceTestSuite) TestPassDevice() {
	out, err := s.service.GetPassDeviceMessage(s.ctx, &GetPassDeviceMessageInput{
		PlayerName: "Alice",
		Phase:      models.PhaseNight,
	})
	s.Require().NoError(err)
	s.Equal("Alice, hold the phone", out.Title)
	s.Equal("Everyone else, close your eyes.", out.Message)
}

func (s *NarrationServiceTestSuite) TestReveal() {
	out, err := s.service.GetRevealMessage(s.ctx, &GetRevealMessageInput{
		PlayerName:  "Alice",
		Role:        models.RoleMafia,
		Description: "Each night, choose someone to kill.",
	})
	s.Require().NoError(err)
	s.Equal("You are: Mafia", out.Title)
	s.Equal("Each night, choose someone to kill.", out.Message)
}

func (s *NarrationServiceTestSuite) TestNightKillNeutral() {
	s.mockShuffler.EXPECT().Intn(1).Return(0)

	out, err := s.service.GetNightResultMessage(s.ctx, &GetNightResultMessageInput{
		Result: &models.NightResult{Round: 2, Killed: "Dave"},
	})
	s.Require().NoError(err)
	s.Equal("Night 2 Results", out.Title)
	s.Equal("Dave was killed by the mafia.", out.Message)
	s.Equal(ToneNeutral, out.Tone)
}

func (s *NarrationServiceTestSuite) TestNightSavedDramatic() {
	s.mockShuffler.EXPECT().Intn(2).Return(0)

	out, err := s.service.GetNightResultMessage(s.ctx, &GetNightResultMessageInput{
		Result:        &models.NightResult{Round: 1, Saved: true},
		PreferredTone: ToneDramatic,
	})
	s.Require().NoError(err)
	s.Equal("The mafia struck, but the doctor was faster. No player was killed.", out.Message)
	s.Equal(ToneDramatic, out.Tone)
}

func (s *NarrationServiceTestSuite) TestNightQuiet() {
	s.mockShuffler.EXPECT().Intn(1).Return(0)

	out, err := s.service.GetNightResultMessage(s.ctx, &GetNightResultMessageInput{
		Result:        &models.NightResult{Round: 1},
		PreferredTone: ToneFunny,
	})
	s.Require().NoError(err)
	s.Equal("No player was killed.", out.Message)
}

func (s *NarrationServiceTestSuite) TestVoteElimination() {
	s.mockShuffler.EXPECT().Intn(1).Return(0)

	out, err := s.service.GetVoteResultMessage(s.ctx, &GetVoteResultMessageInput{
		Result: &models.VoteResult{
			Round:      1,
			Tally:      map[string]int{"Alice": 3, "Bob": 1},
			Eliminated: "Alice",
		},
	})
	s.Require().NoError(err)
	s.Equal("Vote 1 Results", out.Title)
	s.Equal("Alice was eliminated with 3 votes.", out.Message)
}

func (s *NarrationServiceTestSuite) TestVoteTie() {
	s.mockShuffler.EXPECT().Intn(1).Return(0)

	out, err := s.service.GetVoteResultMessage(s.ctx, &GetVoteResultMessageInput{
		Result: &models.VoteResult{
			Round: 1,
			Tally: map[string]int{"Bob": 2, "Alice": 2},
		},
	})
	s.Require().NoError(err)
	s.Equal("Alice and Bob are tied. No player was eliminated.", out.Message)
}

func (s *NarrationServiceTestSuite) TestVoteNotEnough() {
	s.mockShuffler.EXPECT().Intn(1).Return(0)

	out, err := s.service.GetVoteResultMessage(s.ctx, &GetVoteResultMessageInput{
		Result: &models.VoteResult{Round: 1, Tally: map[string]int{"Alice": 1}},
	})
	s.Require().NoError(err)
	s.Equal("No one received enough votes. No player was eliminated.", out.Message)
}

func (s *NarrationServiceTestSuite) TestWin() {
	out, err := s.service.GetWinMessage(s.ctx, &GetWinMessageInput{Winner: models.WinnerCitizens})
	s.Require().NoError(err)
	s.Equal("All mafia are dead. Citizens win!", out.Message)

	out, err = s.service.GetWinMessage(s.ctx, &GetWinMessageInput{Winner: models.WinnerMafia})
	s.Require().NoError(err)
	s.Equal("Mafia have taken over. Mafia win!", out.Message)

	_, err = s.service.GetWinMessage(s.ctx, &GetWinMessageInput{Winner: models.WinnerNone})
	s.Error(err)
}

func (s *NarrationServiceTestSuite) TestErrorMessage() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		ErrorType: ErrorTypeValidation,
		Detail:    "invalid setup: 2 players but 3 roles, please match counts",
	})
	s.Require().NoError(err)
	s.Equal("Please fix the setup", out.Title)
	s.Contains(out.Message, "2 players but 3 roles")
}

func (s *NarrationServiceTestSuite) TestParseTone() {
	s.Equal(ToneFunny, ParseTone("funny"))
	s.Equal(ToneDramatic, ParseTone("dramatic"))
	s.Equal(ToneNeutral, ParseTone(""))
	s.Equal(ToneNeutral, ParseTone("sarcastic"))
}
