package main

import "github.com/globalpulse24/newsroom/internal/cli"

//	@title						GlobalPulse24 Newsroom API
//	@version					1.0
//	@description				Article submission, moderation, and mock publisher earnings.
//	@BasePath					/
//
//	@securityDefinitions.apikey	AdminToken
//	@in							header
//	@name						X-Admin-Token
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cli.Execute()
}
