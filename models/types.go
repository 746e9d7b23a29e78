package models

import "time"

// Moderation status constants
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Role constants
const (
	RoleVoter = "voter"
	RoleAdmin = "admin"
)

// Election groups (constituencies). Fixed enumeration; every candidacy,
// ballot and publication flag is keyed by one of these.
const (
	GroupStudent     = "student"
	GroupTeacher     = "teacher"
	GroupNonTeaching = "nonteaching"
)

// Groups lists every valid election group.
var Groups = []string{GroupStudent, GroupTeacher, GroupNonTeaching}

// ValidGroup reports whether g is a known election group.
func ValidGroup(g string) bool {
	for _, group := range Groups {
		if g == group {
			return true
		}
	}
	return false
}

// ValidModerationStatus reports whether s is a terminal moderation decision.
// "pending" is not a decision an admin can set directly.
func ValidModerationStatus(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

// Request types

type ApplyRequest struct {
	Group       string `json:"group"`
	Position    string `json:"position"`
	DisplayName string `json:"display_name"`
	Department  string `json:"department"`
	Manifesto   string `json:"manifesto"`
	PhotoRef    string `json:"photo_ref"`
}

type CastBallotRequest struct {
	Position    string `json:"position"`
	CandidacyID string `json:"candidacy_id"`
}

type PublicationRequest struct {
	Group    string `json:"group"`
	Position string `json:"position"`
}

// Response types

type ApplyResponse struct {
	Candidacy Candidacy `json:"candidacy"`
	Message   string    `json:"message"`
}

type CastBallotResponse struct {
	Ballot  Ballot `json:"ballot"`
	Message string `json:"message"`
}

type CandidateListResponse struct {
	Candidates []Candidacy `json:"candidates"`
	Count      int         `json:"count"`
}

// AdminCandidate decorates a candidacy with display fields for the review
// queue (relative application age).
type AdminCandidate struct {
	Candidacy
	AppliedAgo string `json:"applied_ago"`
}

type AdminCandidateListResponse struct {
	Candidates []AdminCandidate `json:"candidates"`
	Count      int              `json:"count"`
}

type ResultsResponse struct {
	Group     string       `json:"group"`
	Position  string       `json:"position"`
	Published bool         `json:"published"`
	Results   []TallyEntry `json:"results"`
}

type AdminResultsResponse struct {
	Group     string       `json:"group"`
	Position  string       `json:"position"`
	Published bool         `json:"published"`
	Turnout   int          `json:"turnout"`
	Results   []TallyEntry `json:"results"`
}

type PublicationResponse struct {
	Group     string `json:"group"`
	Position  string `json:"position"`
	Published bool   `json:"published"`
}

// Domain types

type Candidacy struct {
	ID           string    `json:"id"`
	ApplicantID  string    `json:"applicant_id"`
	Group        string    `json:"group"`
	Position     string    `json:"position"`
	DisplayName  string    `json:"display_name"`
	Department   string    `json:"department"`
	Manifesto    string    `json:"manifesto"`
	PhotoRef     string    `json:"photo_ref"`
	Status       string    `json:"status"`
	Disqualified bool      `json:"disqualified"`
	CreatedAt    time.Time `json:"created_at"`
}

type Ballot struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voter_id"`
	Group       string    `json:"group"`
	Position    string    `json:"position"`
	CandidacyID string    `json:"candidacy_id"`
	CastAt      time.Time `json:"cast_at"`
}

// TallyEntry is one row of a seat's tally. Disqualified candidates appear
// with their accumulated count but are never eligible winners.
type TallyEntry struct {
	CandidacyID  string `json:"candidacy_id"`
	DisplayName  string `json:"display_name"`
	Department   string `json:"department"`
	Disqualified bool   `json:"disqualified"`
	VoteCount    int    `json:"vote_count"`
	IsWinner     bool   `json:"is_winner"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
