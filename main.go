package main

import "naukri-api/cmd"

// @title           Naukri API
// @version         1.0
// @description     Job board API: candidates, recruiters and admins; jobs, applications, messaging and interviews.

// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
func main() {
	cmd.Execute()
}
