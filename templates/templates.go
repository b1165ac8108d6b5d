// Package templates holds the email bodies sent by the notification services
package templates

import "embed"

// Emails contains the email body templates under emails/
//go:embed emails/*.gohtml
var Emails embed.FS
