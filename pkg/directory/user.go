package directory

// User is a record in the user directory. The email address doubles as the
// calendar identifier on the calendar provider side.
type User struct {
	Id          int
	Username    string
	DisplayName string
	Email       string
	Phone       string
}
