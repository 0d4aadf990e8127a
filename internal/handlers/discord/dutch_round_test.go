package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/KirkDiggler/dutch/internal/models"
	"github.com/KirkDiggler/dutch/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/dutch/internal/services/messaging/mocks"
	"github.com/KirkDiggler/dutch/internal/services/scoreboard"
	scoreboardMocks "github.com/KirkDiggler/dutch/internal/services/scoreboard/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// recordingTransport captures interaction responses instead of calling Discord
type recordingTransport struct {
	bodies [][]byte
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	t.bodies = append(t.bodies, body)

	return &http.Response{
		StatusCode: http.StatusNoContent,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}

type sentResponse struct {
	Data struct {
		Embeds []*discordgo.MessageEmbed `json:"embeds"`
		Flags  discordgo.MessageFlags    `json:"flags"`
	} `json:"data"`
}

type DutchRoundTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockScoreboard *scoreboardMocks.MockService
	mockMessaging  *messagingMocks.MockService
	transport      *recordingTransport
	session        *discordgo.Session
	command        *DutchCommand

	// Test data
	testChannelID string
	testGame      *models.GameState
	testSummary   *models.Game
}

func (s *DutchRoundTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockScoreboard = scoreboardMocks.NewMockService(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)

	s.transport = &recordingTransport{}
	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)
	session.Client = &http.Client{Transport: s.transport}
	s.session = session

	s.command = NewDutchCommand(s.mockScoreboard, s.mockMessaging, nil)

	s.testChannelID = "test-channel-id"
	s.testGame = &models.GameState{
		GameID:     "test-game-id",
		ScoreLimit: 100,
		Players: []*models.Player{
			{ID: "alice-id", Name: "Alice", TotalScore: 5, Rounds: []models.Round{{Score: 5}}},
			{ID: "bob-id", Name: "Bob", TotalScore: 0, Rounds: []models.Round{{Score: 0, IsDutch: true}}},
		},
		RoundHistory: []models.RoundHistoryEntry{{Scores: []int{5, 0}, DutchPlayerID: "bob-id"}},
	}
	s.testSummary = &models.Game{
		ID:     "test-game-id",
		Rounds: 1,
		Winner: "Bob",
		Players: []*models.GamePlayer{
			{Name: "Alice", Score: 105},
			{Name: "Bob", Score: 0, IsDutch: true},
		},
	}
}

func (s *DutchRoundTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDutchRoundTestSuite(t *testing.T) {
	suite.Run(t, new(DutchRoundTestSuite))
}

func (s *DutchRoundTestSuite) roundInteraction(scores, dutch string) *discordgo.InteractionCreate {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "scores", Type: discordgo.ApplicationCommandOptionString, Value: scores},
	}
	if dutch != "" {
		opts = append(opts, &discordgo.ApplicationCommandInteractionDataOption{
			Name: "dutch", Type: discordgo.ApplicationCommandOptionString, Value: dutch,
		})
	}

	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "test-interaction-id",
			Token:     "test-interaction-token",
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: s.testChannelID,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "dutch",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "round", Type: discordgo.ApplicationCommandOptionSubCommand, Options: opts},
				},
			},
		},
	}
}

func (s *DutchRoundTestSuite) lastResponse() sentResponse {
	s.Require().Len(s.transport.bodies, 1)

	var resp sentResponse
	s.Require().NoError(json.Unmarshal(s.transport.bodies[0], &resp))
	return resp
}

func (s *DutchRoundTestSuite) expectSettings(commentary bool) {
	s.mockScoreboard.EXPECT().
		GetSettings(gomock.Any(), &scoreboard.GetSettingsInput{ChannelID: s.testChannelID}).
		Return(&scoreboard.GetSettingsOutput{CommentaryEnabled: commentary}, nil)
}

func (s *DutchRoundTestSuite) TestRoundWithCommentary() {
	round := &s.testGame.RoundHistory[0]
	s.mockScoreboard.EXPECT().
		AddRound(gomock.Any(), &scoreboard.AddRoundInput{
			ChannelID:   s.testChannelID,
			Scores:      []int{5, 0},
			DutchPlayer: "Bob",
		}).
		Return(&scoreboard.AddRoundOutput{Game: s.testGame, Round: round}, nil)
	s.expectSettings(true)
	s.mockMessaging.EXPECT().
		GetRoundCommentary(gomock.Any(), &messaging.GetRoundCommentaryInput{
			Players: s.testGame.Players,
			Round:   round,
		}).
		Return(&messaging.GetRoundCommentaryOutput{Message: "Clean Dutch from Bob."}, nil)

	s.Require().NoError(s.command.Handle(s.session, s.roundInteraction("5, 0", "Bob")))

	resp := s.lastResponse()
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Round 1", resp.Data.Embeds[0].Title)
	s.Require().NotNil(resp.Data.Embeds[0].Footer)
	s.Equal("Clean Dutch from Bob.", resp.Data.Embeds[0].Footer.Text)
	s.Zero(resp.Data.Flags)
}

func (s *DutchRoundTestSuite) TestGameOverWithoutCommentary() {
	s.testGame.IsGameOver = true
	s.mockScoreboard.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(&scoreboard.AddRoundOutput{
			Game:     s.testGame,
			Round:    &s.testGame.RoundHistory[0],
			GameOver: true,
			Summary:  s.testSummary,
		}, nil)
	s.expectSettings(false)

	s.Require().NoError(s.command.Handle(s.session, s.roundInteraction("100 0", "")))

	resp := s.lastResponse()
	s.Require().Len(resp.Data.Embeds, 2)
	s.Nil(resp.Data.Embeds[0].Footer)
	s.Equal("Game Over!", resp.Data.Embeds[1].Title)
	s.Contains(resp.Data.Embeds[1].Description, "🏆 Bob: 0")
}

func (s *DutchRoundTestSuite) TestGameOverWithCommentary() {
	s.testGame.IsGameOver = true
	s.mockScoreboard.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(&scoreboard.AddRoundOutput{
			Game:     s.testGame,
			Round:    &s.testGame.RoundHistory[0],
			GameOver: true,
			Summary:  s.testSummary,
		}, nil)
	s.expectSettings(true)
	s.mockMessaging.EXPECT().
		GetRoundCommentary(gomock.Any(), gomock.Any()).
		Return(&messaging.GetRoundCommentaryOutput{Message: "Ouch."}, nil)
	s.mockMessaging.EXPECT().
		GetGameOverMessage(gomock.Any(), &messaging.GetGameOverMessageInput{Summary: s.testSummary}).
		Return(&messaging.GetGameOverMessageOutput{Title: "That's a wrap", Message: "Bob takes it."}, nil)

	s.Require().NoError(s.command.Handle(s.session, s.roundInteraction("100 0", "")))

	resp := s.lastResponse()
	s.Require().Len(resp.Data.Embeds, 2)
	s.Equal("That's a wrap", resp.Data.Embeds[1].Title)
	s.True(strings.HasPrefix(resp.Data.Embeds[1].Description, "Bob takes it.\n\n"))
}

func (s *DutchRoundTestSuite) TestCommentaryFailureStillResponds() {
	s.mockScoreboard.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(&scoreboard.AddRoundOutput{Game: s.testGame, Round: &s.testGame.RoundHistory[0]}, nil)
	s.expectSettings(true)
	s.mockMessaging.EXPECT().
		GetRoundCommentary(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	s.Require().NoError(s.command.Handle(s.session, s.roundInteraction("5 0", "")))

	resp := s.lastResponse()
	s.Require().Len(resp.Data.Embeds, 1)
	s.Nil(resp.Data.Embeds[0].Footer)
}

func (s *DutchRoundTestSuite) TestUnparsableScoresNeverReachTheService() {
	testCases := []string{"5 abc", "5000 1", "9223372036854775807 1"}

	for _, scores := range testCases {
		s.Run(scores, func() {
			s.transport.bodies = nil
			s.mockMessaging.EXPECT().
				GetErrorMessage(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, input *messaging.GetErrorMessageInput) (*messaging.GetErrorMessageOutput, error) {
					s.Equal(messaging.ErrorTypeInvalidScores, input.ErrorType)
					s.NotEmpty(input.Detail)
					return &messaging.GetErrorMessageOutput{Title: "Invalid Scores", Message: "Try again", Tag: "DUTCH-0042"}, nil
				})

			s.Require().NoError(s.command.Handle(s.session, s.roundInteraction(scores, "")))

			resp := s.lastResponse()
			s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
			s.Require().Len(resp.Data.Embeds, 1)
			s.Equal("Invalid Scores", resp.Data.Embeds[0].Title)
			s.Equal("DUTCH-0042", resp.Data.Embeds[0].Footer.Text)
		})
	}
}

func (s *DutchRoundTestSuite) TestServiceErrorIsClassified() {
	s.mockScoreboard.EXPECT().
		AddRound(gomock.Any(), gomock.Any()).
		Return(nil, scoreboard.ErrGameOver)
	s.mockMessaging.EXPECT().
		GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeGameOver}).
		Return(&messaging.GetErrorMessageOutput{Title: "Game Over", Message: "Continue or restart.", Tag: "DUTCH-0007"}, nil)

	s.Require().NoError(s.command.Handle(s.session, s.roundInteraction("1 2", "")))

	resp := s.lastResponse()
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("Game Over", resp.Data.Embeds[0].Title)
	s.Equal("Continue or restart.", resp.Data.Embeds[0].Description)
}
