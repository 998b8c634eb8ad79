package domain

import "fmt"

// Status is a stage of the day workflow. The order of statuses in
// statusOrder is the only legal progression path.
type Status string

const (
	StatusChooseTopic Status = "CHOOSE_TOPIC"
	StatusThinkOfText Status = "THINK_OF_TEXT"
	StatusPolishText  Status = "POLISH_TEXT"
	StatusSchedule    Status = "SCHEDULE"
	StatusPost        Status = "POST"
)

var statusOrder = [...]Status{
	StatusChooseTopic,
	StatusThinkOfText,
	StatusPolishText,
	StatusSchedule,
	StatusPost,
}

// Statuses returns the workflow stages in progression order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder[:])
	return out
}

// ParseStatus converts a raw string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool { return s.Index() >= 0 }

// Index returns the position of s in the progression, or -1 if s is invalid.
func (s Status) Index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the following stage. ok is false for the terminal stage.
func (s Status) Next() (Status, bool) {
	i := s.Index()
	if i < 0 || i == len(statusOrder)-1 {
		return s, false
	}
	return statusOrder[i+1], true
}

// Prev returns the preceding stage. ok is false for the first stage.
func (s Status) Prev() (Status, bool) {
	i := s.Index()
	if i <= 0 {
		return s, false
	}
	return statusOrder[i-1], true
}

// IsTerminal reports whether s is the final, locking stage.
func (s Status) IsTerminal() bool { return s == StatusPost }

// PostFormat is the informational media format of a post.
type PostFormat string

const (
	PostFormatScreenshot  PostFormat = "SCREENSHOT"
	PostFormatInfographic PostFormat = "INFOGRAPHIC"
	PostFormatTextPost    PostFormat = "TEXT_POST"
	PostFormatCarousel    PostFormat = "CAROUSEL"
	PostFormatVideo       PostFormat = "VIDEO"
)

func (f PostFormat) String() string { return string(f) }

func (f PostFormat) IsValid() bool {
	switch f {
	case PostFormatScreenshot, PostFormatInfographic, PostFormatTextPost,
		PostFormatCarousel, PostFormatVideo:
		return true
	}
	return false
}

// PostRule is the 70/20/10 content-mix bucket a post belongs to.
type PostRule string

const (
	PostRule70 PostRule = "RULE_70"
	PostRule20 PostRule = "RULE_20"
	PostRule10 PostRule = "RULE_10"
)

func (r PostRule) String() string { return string(r) }

func (r PostRule) IsValid() bool {
	switch r {
	case PostRule70, PostRule20, PostRule10:
		return true
	}
	return false
}

// HeaderKind selects the row or column headers of the matrix.
type HeaderKind string

const (
	HeaderKindRow    HeaderKind = "row"
	HeaderKindColumn HeaderKind = "col"
)

func (k HeaderKind) String() string { return string(k) }

func (k HeaderKind) IsValid() bool {
	return k == HeaderKindRow || k == HeaderKindColumn
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeDay         EntityType = "DAY"
	EntityTypeMatrix      EntityType = "MATRIX"
	EntityTypeHooks       EntityType = "HOOKS"
	EntityTypeIntegration EntityType = "INTEGRATION"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeDay, EntityTypeMatrix, EntityTypeHooks, EntityTypeIntegration:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionPublish AuditAction = "PUBLISH"
	AuditActionShare   AuditAction = "SHARE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionPublish, AuditActionShare:
		return true
	}
	return false
}
