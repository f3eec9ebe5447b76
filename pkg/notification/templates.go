package notification

import "html/template"

const requestNoticeBody = `<p>Beste,</p>
<p>Er is een nieuwe aanvraag voor een keuring: <strong>{{.Type}}</strong>.</p>
<p>Bekijk de aanvraag: <a href="{{.Link}}">{{.Link}}</a></p>`

const certificateNoticeBody = `<p>Beste,</p>
<p>Het attest van de keuring ({{.Type}}) op {{.Location}} voor {{.ClientName}} is beschikbaar.</p>
<p><a href="{{.Link}}">Download het attest</a></p>`

const visitDateChangeBody = `<p>Beste,</p>
<p>Het bezoek voor de keuring ({{.Types}}) op {{.Location}} voor {{.ClientName}} is verplaatst naar <strong>{{.Date}}</strong>.</p>`

var (
	requestNoticeTmpl     = template.Must(template.New("requestNotice").Parse(requestNoticeBody))
	certificateNoticeTmpl = template.Must(template.New("certificateNotice").Parse(certificateNoticeBody))
	visitDateChangeTmpl   = template.Must(template.New("visitDateChange").Parse(visitDateChangeBody))
)
