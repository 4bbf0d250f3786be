/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
// @title           Church Management API
// @version         1.0
// @description     Community management API server: members, assistance appointments, help requests and community directory
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token from Keycloak
package main

import "github.com/JohnPitter/church-management-sub005/cmd"

func main() {
	cmd.Execute()
}
