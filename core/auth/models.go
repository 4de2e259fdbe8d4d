package auth

// Roles
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Identity is a signed-in user. There is no real account system behind it;
// identities come from a fixed directory, keeping authentication a demo-only
// mock.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (i Identity) IsTeacher() bool { return i.Role == RoleTeacher }
func (i Identity) IsStudent() bool { return i.Role == RoleStudent }
func (i Identity) IsZero() bool    { return i == Identity{} }

// DefaultDirectory holds the known demo identities.
var DefaultDirectory = []Identity{
	{ID: "1", Email: "teacher@example.com", Name: "John Teacher", Role: RoleTeacher},
	{ID: "2", Email: "student@example.com", Name: "Jane Student", Role: RoleStudent},
}
