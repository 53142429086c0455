// Comando token emite um token de acesso para a área administrativa.
// Uso: go run ./cmd/token -id 1 -email admin@clinica.com
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-admin-api/internal/config"
	"github.com/vfg2006/clinic-admin-api/internal/domain"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-admin-api/pkg/middleware"
)

func main() {
	userID := flag.Int("id", 1, "ID do usuário")
	name := flag.String("name", "admin", "nome do usuário")
	email := flag.String("email", "", "email do usuário")
	role := flag.Int("role", middleware.RoleAdmin, "perfil do usuário (1=admin, 2=supervisor, 3=cliente)")
	flag.Parse()

	logrus.SetOutput(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).IssueToken(&domain.Claims{
		UserID:     *userID,
		UserName:   *name,
		UserEmail:  *email,
		UserActive: true,
		UserRoleID: *role,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	fmt.Println(token)
}
