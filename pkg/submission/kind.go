package submission

// Kind identifies what a submission is, derived from the payload shape
// rather than taken from any single untrusted field.
type Kind string

const (
	// KindContact is a general inquiry from the contact form.
	KindContact Kind = "contact"
	// KindCandidate is a contact-style submission marked as a candidate
	// application; it only changes how staff notifications are labeled.
	KindCandidate Kind = "candidate"
	// KindTalentPool is a talent-pool application from the apply form.
	KindTalentPool Kind = "talent_pool"
)

// Label returns the human-readable heading used in staff notifications.
func (k Kind) Label() string {
	switch k {
	case KindCandidate:
		return "New Candidate Application"
	case KindTalentPool:
		return "New Talent Pool Application"
	default:
		return "New Contact Form Submission"
	}
}

// Discriminator field names and values recognized on the wire.
const (
	fieldType      = "type"
	fieldFormType  = "formType"
	typeCandidate  = "candidate"
	formTypeTalent = "talentPool"
	fieldName      = "name"
	fieldFullName  = "fullName"
	fieldEmail     = "email"
	fieldMessage   = "message"
)
