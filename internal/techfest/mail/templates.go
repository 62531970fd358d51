package mail

import "fmt"

const (
	SubjectWelcome            = "Welcome to TechFest 2025!"
	SubjectHackathonConfirmed = "Hackathon Registration Confirmed - TechFest 2025"
	SubjectWorkshopConfirmed  = "Workshop Registration Confirmed - TechFest 2025"
	SubjectPasswordReset      = "Password Reset - TechFest 2025"
)

func WelcomeBody(name string) string {
	return fmt.Sprintf(
		`<h1>Welcome, %s!</h1><p>Your account has been created successfully. You can now register for events.</p>`,
		name)
}

func HackathonConfirmationBody(leaderName, teamName string, totalMembers int) string {
	return fmt.Sprintf(`<h1>Registration Confirmed!</h1>
<p>Hi %s,</p>
<p>Your team <strong>%s</strong> has been successfully registered for Hackathon 2025!</p>
<h3>Team Details:</h3>
<ul>
<li>Team Name: %s</li>
<li>Team Leader: %s</li>
<li>Total Members: %d</li>
</ul>
<p>Event Date: March 15-17, 2025</p>
<p>We're excited to have you!</p>`,
		leaderName, teamName, teamName, leaderName, totalMembers)
}

func WorkshopConfirmationBody(name, email, college string) string {
	return fmt.Sprintf(`<h1>Registration Confirmed!</h1>
<p>Hi %s,</p>
<p>You have been successfully registered for the Python Workshop!</p>
<h3>Your Details:</h3>
<ul>
<li>Name: %s</li>
<li>Email: %s</li>
<li>College: %s</li>
</ul>
<p>Event Date: April 5-6, 2025</p>
<p>You will receive a certificate upon completion.</p>
<p>We're excited to have you!</p>`,
		name, name, email, college)
}

func PasswordResetBody(token string) string {
	return fmt.Sprintf(
		`<h1>Password Reset</h1><p>Click the link to reset your password: <a href="/reset-password?token=%s">Reset Password</a></p><p>This link expires in 1 hour.</p>`,
		token)
}
