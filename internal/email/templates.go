package email

import (
	"html/template"
	"strings"
)

// VerificationData feeds the verification email template.
type VerificationData struct {
	Name string
	Link string
}

var verificationTmpl = template.Must(template.New("verification").Parse(`<div style="font-family:sans-serif">
<h2>Verify your email</h2>
<p>Hi {{.Name}}, please confirm your email to activate your account.</p>
<p>
<a href="{{.Link}}" style="display:inline-block; padding:10px 16px; background:#6366f1; color:#fff; border-radius:6px; text-decoration:none;">Verify Email</a>
</p>
<p>Or copy this link: {{.Link}}</p>
<p>This link expires in 24 hours.</p>
</div>`))

// RenderVerification renders the verification email body.
func RenderVerification(data VerificationData) (string, error) {
	var sb strings.Builder
	if err := verificationTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
