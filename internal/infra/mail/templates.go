package mail

import (
	"html/template"
	"strings"

	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
)

// The branded layout mirrors the transactional mails guests already
// receive from the shop. Dark background, orange accent, Georgia display
// face, restaurant footer.
const baseLayout = `<!DOCTYPE html>
<html lang="de">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>MOGGI - Asian Kitchen &amp; Bar</title>
</head>
<body style="margin:0;padding:0;background-color:#1A1A1A;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,'Helvetica Neue',Arial,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#1A1A1A;">
    <tr>
      <td align="center" style="padding:40px 20px;">
        <table width="600" cellpadding="0" cellspacing="0" style="width:600px;max-width:100%;background-color:#0A0A0A;border-radius:16px;overflow:hidden;">
          <tr>
            <td style="background-color:#0A0A0A;padding:40px 30px;text-align:center;border-bottom:3px solid #FF6B00;">
              <h1 style="margin:0;color:#FFFFFF;font-size:36px;font-weight:300;font-family:Georgia,serif;">MOGGI</h1>
              <p style="margin:10px 0 0 0;color:#FF6B00;font-size:14px;letter-spacing:2px;text-transform:uppercase;">Asian Kitchen &amp; Bar</p>
            </td>
          </tr>
          <tr>
            <td style="padding:24px 30px 10px;text-align:center;">
              <h2 style="margin:0;color:#FFFFFF;font-size:24px;font-weight:300;font-family:Georgia,serif;">{{.Heading}}</h2>
            </td>
          </tr>
          <tr>
            <td style="padding:0 30px 24px;">
              <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#1A1A1A;border-radius:12px;border-left:4px solid #FF6B00;">
                <tr>
                  <td style="padding:20px;">
                    <p style="margin:0;color:#FFFFFF;font-size:16px;line-height:24px;white-space:pre-wrap;">{{.Message}}</p>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="background-color:#0A0A0A;padding:30px;text-align:center;border-top:1px solid #2A2A2A;">
              <p style="margin:0 0 12px 0;color:#FFFFFF;font-size:16px;font-weight:600;">MOGGI Asian Kitchen &amp; Bar</p>
              <p style="margin:0 0 8px 0;color:#999999;font-size:14px;">Katharinengasse 14, 90403 N&uuml;rnberg</p>
              <p style="margin:0 0 8px 0;color:#999999;font-size:14px;">&#128222; 0911 63290791</p>
              <p style="margin:0;color:#999999;font-size:14px;">&#128231; info@moggi-nuernberg.de</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

var base = template.Must(template.New("base").Parse(baseLayout))

const (
	reservationHeading = "Nachricht zu deiner Reservierung"
	orderHeading       = "Nachricht zu deiner Bestellung"
	noShowHeading      = "Deine Reservierung bei MOGGI"
)

// DefaultSubject returns the subject line used when the caller supplies
// none.
func DefaultSubject(kind string) string {
	if kind == "order" {
		return orderHeading
	}
	return reservationHeading
}

func render(heading, message string) (string, error) {
	var sb strings.Builder
	err := base.Execute(&sb, struct {
		Heading string
		Message template.HTML
	}{
		Heading: heading,
		Message: template.HTML(template.HTMLEscapeString(message)),
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to render mail template")
	}
	return sb.String(), nil
}

// RenderReservationMessage wraps a free-text note to a guest about their
// reservation in the branded layout.
func RenderReservationMessage(message string) (string, error) {
	return render(reservationHeading, message)
}

// RenderOrderMessage wraps a free-text note to a guest about their order.
func RenderOrderMessage(message string) (string, error) {
	return render(orderHeading, message)
}

// RenderNoShowNotice builds the notification sent when a reservation is
// marked as a no-show.
func RenderNoShowNotice(guestName, date, clock string) (string, error) {
	message := "Hallo " + guestName + ",\n\n" +
		"leider haben wir dich zu deiner Reservierung am " + date + " um " + clock + " Uhr nicht bei uns begrüßen können. " +
		"Deine Reservierung wurde daher als nicht wahrgenommen vermerkt.\n\n" +
		"Falls es sich um ein Versehen handelt oder du einen neuen Termin wünschst, melde dich gerne bei uns.\n\n" +
		"Dein MOGGI Team"
	return render(noShowHeading, message)
}
