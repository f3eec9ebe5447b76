package notification

// RequestNotice announces a newly submitted inspection request. Type may
// hold multiple inspection types separated by "/".
type RequestNotice struct {
	To      string
	Subject string
	Type    string
	Link    string
}

// CertificateNotice announces that an inspection certificate is available
// for download.
type CertificateNotice struct {
	To         string
	Subject    string
	Location   string
	ClientName string
	Type       string
	Link       string
}

// VisitDateChangeNotice announces a new visit date for one or more
// inspection types.
type VisitDateChangeNotice struct {
	To         string
	Subject    string
	Location   string
	ClientName string
	Date       string
	Types      []string
}
