package constants

// Redis key formats
const (
	// Tutor Service
	KeyTutorSession  = "tutor:session:%s"        // Format: tutor:session:{session_id}
	KeyProposalDraft = "tutor:proposal:draft:%s" // Format: tutor:proposal:draft:{tutor_id}
)

// Redis hash fields
const (
	FieldToken     = "token"
	FieldUserID    = "userId"
	FieldUserName  = "userName"
	FieldUserEmail = "userEmail"
	FieldCreatedAt = "createdAt"

	FieldWalkerID   = "walkerId"
	FieldWalkerName = "walkerName"
	FieldPetID      = "petId"
	FieldPetName    = "petName"
	FieldDate       = "date"
	FieldTime       = "time"
	FieldUpdatedAt  = "updatedAt"
)
