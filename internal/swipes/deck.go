package swipes

import "math/rand/v2"

// Card count limits for a dealt hand.
const (
	DefaultHand = 5
	MinHand     = 1
)

var deck = []string{
	"They liked your Instagram story from 2 months ago - they're definitely stalking you and planning your future together",
	"They didn't text back for 3 hours during work hours - clearly they're playing hard to get and testing your dedication",
	"They laughed at your joke in the group chat - this is obviously their way of flirting with you specifically",
	"They asked to borrow your notes - this is clearly an excuse to spend more time with you and get your number",
	"They said 'we should hang out sometime' - this is basically a marriage proposal in disguise",
	"They watched all your stories but didn't reply to your DM - they're obviously shy and waiting for you to make the first move",
	"They complimented your new haircut - they've been thinking about you all day and finally found an excuse to talk",
	"They didn't sit next to you in class today - they're trying to make you jealous and realize your feelings",
	"They liked your comment on their post - this is their subtle way of saying they're interested in you",
	"They remembered your coffee order - they're paying attention to every detail because they're falling for you",
	"They took 30 minutes to reply but usually reply in 5 - they're strategically timing their responses to seem mysterious",
	"They said your outfit looks nice - this is basically them saying they find you attractive and want to date you",
	"They didn't laugh at your joke - they're nervous around you because they have feelings and don't know how to act",
	"They follow you on social media but don't like your posts - they're trying to be cool and not seem too eager",
	"They asked if you're going to the party - they want to make sure you'll be there because they want to hang out with you",
}

// Card is one dealt scenario. ID is the card's position in the hand and is
// echoed back as cardId in swipe results.
type Card struct {
	ID       int    `json:"id"`
	Scenario string `json:"scenario"`
}

// DeckSize returns the number of scenarios in the deck.
func DeckSize() int {
	return len(deck)
}

// Deal draws n distinct scenarios in random order using rng.
// Returns ErrInvalidCount when n is outside 1..DeckSize.
func Deal(n int, rng *rand.Rand) ([]Card, error) {
	if n < MinHand || n > len(deck) {
		return nil, ErrInvalidCount
	}

	perm := rng.Perm(len(deck))
	hand := make([]Card, n)
	for i := range hand {
		hand[i] = Card{ID: i, Scenario: deck[perm[i]]}
	}
	return hand, nil
}
