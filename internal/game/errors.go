package game

import "errors"

var (
	// ErrInvalidTurnLength is returned when a turn does not have one entry per slot.
	ErrInvalidTurnLength = errors.New("turn length does not match word length")

	// ErrLengthMismatch is returned when a guess and an answer differ in length.
	ErrLengthMismatch = errors.New("guess and answer lengths differ")

	// ErrUnknownClassification is returned for a mark outside exact/present/absent.
	ErrUnknownClassification = errors.New("unknown classification")

	// ErrInvalidLetter is returned for a turn entry outside lowercase a–z.
	ErrInvalidLetter = errors.New("letter outside a-z")

	// ErrEmptyCandidateSet means the constraints exclude every dictionary word.
	ErrEmptyCandidateSet = errors.New("no candidate words remain")
)
