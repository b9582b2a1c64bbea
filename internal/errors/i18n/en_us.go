package i18n

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDeckInvalid             = "DECK_INVALID"
	CodeDeckFull                = "DECK_FULL"
	CodeDeckCardNotFound        = "DECK_CARD_NOT_FOUND"
	CodeDeckDuplicateNotAllowed = "DECK_DUPLICATE_NOT_ALLOWED"
	CodeDeckMaxCopiesExceeded   = "DECK_MAX_COPIES_EXCEEDED"
	CodeHandInvalidConfig       = "HAND_INVALID_CONFIG"
	CodeHandOverflow            = "HAND_OVERFLOW"
	CodeHandCardNotFound        = "HAND_CARD_NOT_FOUND"
	CodeDraftCardNotInOptions   = "DRAFT_CARD_NOT_IN_OPTIONS"
	CodeDraftPickLimitReached   = "DRAFT_PICK_LIMIT_REACHED"
	CodeDraftBanningNotAllowed  = "DRAFT_BANNING_NOT_ALLOWED"
	CodeDraftNoRerollsRemaining = "DRAFT_NO_REROLLS_REMAINING"
	CodeDraftSkipNotAllowed     = "DRAFT_SKIP_NOT_ALLOWED"
)

var enUSCatalog = NewCatalog(BaseLocale, map[Code]string{
	// Deck errors
	CodeDeckInvalid:             "Deck is invalid: {{.Reason}}",
	CodeDeckFull:                "Deck is full ({{.MaxSize}} cards)",
	CodeDeckCardNotFound:        "Card {{.CardID}} is not in the deck",
	CodeDeckDuplicateNotAllowed: "Duplicate cards are not allowed in this deck",
	CodeDeckMaxCopiesExceeded:   "No more than {{.MaxCopies}} copies of a card are allowed",

	// Hand errors
	CodeHandInvalidConfig: "Hand configuration is invalid: {{.Reason}}",
	CodeHandOverflow:      "Hand cannot hold more than {{.MaxSize}} cards",
	CodeHandCardNotFound:  "Card {{.CardID}} is not in the hand",

	// Draft errors
	CodeDraftCardNotInOptions:   "Card {{.CardID}} is not among the draft options",
	CodeDraftPickLimitReached:   "All {{.PicksCount}} picks have been made",
	CodeDraftBanningNotAllowed:  "Bans are not allowed in this draft",
	CodeDraftNoRerollsRemaining: "No rerolls remaining",
	CodeDraftSkipNotAllowed:     "This draft cannot be skipped",
})
