package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dutch/internal/common/random"
	"github.com/KirkDiggler/dutch/internal/models"
	"github.com/KirkDiggler/dutch/internal/stats"
)

// service implements the Service interface
type service struct {
	picker random.Picker
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	picker := config.Picker
	if picker == nil {
		picker = random.New(nil)
	}

	return &service{
		picker: picker,
	}, nil
}

// GetRoundCommentary picks a remark for the most notable thing in the round.
// Dutch calls win over zeros, zeros over blow-ups and blow-ups over a change
// of leader.
func (s *service) GetRoundCommentary(ctx context.Context, input *GetRoundCommentaryInput) (*GetRoundCommentaryOutput, error) {
	if input == nil || input.Round == nil {
		return nil, errors.New("input and round cannot be nil")
	}

	if len(input.Round.Scores) != len(input.Players) {
		return nil, errors.New("round does not match players")
	}

	var messages []string
	situation := SituationGeneric

	dutch := findPlayer(input.Players, input.Round.DutchPlayerID)
	zero, blowUp, blowUpScore := notableScores(input.Players, input.Round.Scores)

	switch {
	case dutch != nil && input.PenaltyApplied:
		situation = SituationDutchPenalty
		messages = []string{
			fmt.Sprintf("%s called Dutch and got caught. Enjoy the extra points!", dutch.Name),
			fmt.Sprintf("Bold call, %s. Wrong, but bold. Penalty applied.", dutch.Name),
			fmt.Sprintf("%s yelled Dutch with a straight face. The table disagreed.", dutch.Name),
			fmt.Sprintf("Somebody had a lower hand, %s. That's the tax.", dutch.Name),
		}
	case dutch != nil:
		situation = SituationDutchSuccess
		messages = []string{
			fmt.Sprintf("%s called Dutch and nailed it. Cold blooded.", dutch.Name),
			fmt.Sprintf("Dutch! %s read the table perfectly.", dutch.Name),
			fmt.Sprintf("%s knew exactly what they were holding. Respect.", dutch.Name),
			fmt.Sprintf("Clean Dutch from %s. Everyone else, take notes.", dutch.Name),
		}
	case zero != nil:
		situation = SituationPerfectZero
		messages = []string{
			fmt.Sprintf("A perfect zero for %s. Nothing to see here.", zero.Name),
			fmt.Sprintf("%s walks away with zero points. Smug face allowed.", zero.Name),
			fmt.Sprintf("Zero! %s is making this look easy.", zero.Name),
		}
	case blowUp != nil:
		situation = SituationBlowUp
		messages = []string{
			fmt.Sprintf("Ouch. %s just ate %d points.", blowUp.Name, blowUpScore),
			fmt.Sprintf("%s took %d in one round. Were those cards or bricks?", blowUp.Name, blowUpScore),
			fmt.Sprintf("%d points for %s. Somebody check on them.", blowUpScore, blowUp.Name),
		}
	default:
		leader := leaderOf(input.Players)
		if input.PreviousLeaderID != "" && leader != nil && leader.ID != input.PreviousLeaderID {
			situation = SituationNewLeader
			messages = []string{
				fmt.Sprintf("New leader! %s takes the top spot with %d.", leader.Name, leader.TotalScore),
				fmt.Sprintf("%s sneaks into first place. Watch your backs.", leader.Name),
				fmt.Sprintf("The crown moves to %s. For now.", leader.Name),
			}
		} else {
			messages = []string{
				"Round in the books. Shuffle up.",
				"Nothing dramatic. The calm before the storm?",
				"Steady round. Somebody make a move already.",
				"Scores are in. The plot thickens, slowly.",
			}
		}
	}

	return &GetRoundCommentaryOutput{
		Message:   s.pick(messages),
		Situation: situation,
	}, nil
}

// GetGameOverMessage returns a winner line and a line for the player with
// the highest total
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil || input.Summary == nil {
		return nil, errors.New("input and summary cannot be nil")
	}

	summary := input.Summary
	winnerLines := []string{
		fmt.Sprintf("%s wins with the lowest score. Bow down.", summary.Winner),
		fmt.Sprintf("All hail %s, master of small numbers.", summary.Winner),
		fmt.Sprintf("%s takes it. The rest of you, practice more.", summary.Winner),
	}

	lines := []string{s.pick(winnerLines)}

	if loser := highestScorer(summary.Players); loser != nil && loser.Name != summary.Winner {
		loserLines := []string{
			fmt.Sprintf("%s finishes on %d. Maybe try a different game?", loser.Name, loser.Score),
			fmt.Sprintf("%s collected %d points. That's a lot of points.", loser.Name, loser.Score),
			fmt.Sprintf("Thoughts and prayers for %s and their %d points.", loser.Name, loser.Score),
		}
		lines = append(lines, s.pick(loserLines))
	}

	return &GetGameOverMessageOutput{
		Title:   "Game Over!",
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetUndoMessage returns a remark for an undone round
func (s *service) GetUndoMessage(ctx context.Context, input *GetUndoMessageInput) (*GetUndoMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"Round erased. We'll pretend that never happened.",
		"Undo! History is written by whoever has the button.",
		"That round is gone. No witnesses.",
	}
	if input.Reopened {
		messages = []string{
			"Game back on! Somebody fat-fingered the ending.",
			"Not over after all. Back to the cards.",
		}
	}

	return &GetUndoMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetStartMessage returns a greeting for a new game
func (s *service) GetStartMessage(ctx context.Context, input *GetStartMessageInput) (*GetStartMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	players := strings.Join(input.PlayerNames, ", ")
	messages := []string{
		fmt.Sprintf("Cards are dealt for %s. First to %d loses!", players, input.ScoreLimit),
		fmt.Sprintf("%s, keep your hands low. Limit is %d.", players, input.ScoreLimit),
		fmt.Sprintf("New game! %s, may your cards be small. Playing to %d.", players, input.ScoreLimit),
	}

	return &GetStartMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message with a reference tag
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	var messages []string

	switch input.ErrorType {
	case ErrorTypeNoGame:
		title = "No Game Running"
		messages = []string{
			"There's no game here yet. Try `/dutch start`.",
			"Nobody's playing. Deal a game with `/dutch start` first.",
		}
	case ErrorTypeGameOver:
		title = "Game Over"
		messages = []string{
			"This game is finished. Continue it, restart it or end it.",
			"The fat lady sang. Use continue or restart to keep going.",
		}
	case ErrorTypeGameRunning:
		title = "Game Already Running"
		messages = []string{
			"A game is already going in this channel. End it first.",
			"One game at a time, please. `/dutch end` clears the table.",
		}
	case ErrorTypeInvalidScores:
		title = "Invalid Scores"
		messages = []string{
			"Those scores don't add up. One whole number per player, please.",
			"I can't read those scores. Try something like `5 0 12`.",
		}
	case ErrorTypeUnknownPlayer:
		title = "Unknown Player"
		messages = []string{
			"I don't know who that is. Check the name against the scoreboard.",
			"No player by that name at this table.",
		}
	case ErrorTypeInvalidSetup:
		title = "Invalid Players"
		messages = []string{
			"I need at least two different names to start a game.",
			"Check the player list. Names must be unique and there must be at least two.",
		}
	case ErrorTypeNothingToUndo:
		title = "Nothing to Undo"
		messages = []string{
			"There are no rounds to undo.",
			"Can't undo what hasn't happened yet.",
		}
	case ErrorTypeCannotResume:
		title = "Can't Continue"
		messages = []string{
			"Only a finished game can be continued, and the new limit must beat every total.",
			"Pick a limit above everybody's score, and only once the game is over.",
		}
	default:
		title = "Something Went Wrong"
		messages = []string{
			"Something went wrong on my side. Give it another try.",
			"The scorekeeper tripped over the cards. Try again in a moment.",
		}
	}

	message := s.pick(messages)
	if input.Detail != "" {
		message = fmt.Sprintf("%s (%s)", message, input.Detail)
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
		Tag:     fmt.Sprintf("DUTCH-%04d", s.picker.Intn(10000)),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.picker.Intn(len(messages))]
}

func findPlayer(players []*models.Player, id string) *models.Player {
	if id == "" {
		return nil
	}
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// notableScores returns the first player on zero and the player with the
// highest score at or above BlowUpScore
func notableScores(players []*models.Player, scores []int) (*models.Player, *models.Player, int) {
	var zero, blowUp *models.Player
	blowUpScore := 0

	for i, score := range scores {
		if score == 0 && zero == nil {
			zero = players[i]
		}
		if score >= BlowUpScore && score > blowUpScore {
			blowUp = players[i]
			blowUpScore = score
		}
	}

	return zero, blowUp, blowUpScore
}

func leaderOf(players []*models.Player) *models.Player {
	standings := stats.Standings(players)
	if len(standings) == 0 {
		return nil
	}
	return standings[0]
}

func highestScorer(players []*models.GamePlayer) *models.GamePlayer {
	var highest *models.GamePlayer
	for _, p := range players {
		if highest == nil || p.Score > highest.Score {
			highest = p
		}
	}
	return highest
}
