// Package seed loads a sample roster into an empty registry. It exists as an
// explicitly invoked maintenance operation (the -seed flag); it never runs as
// a side effect of normal startup.
package seed

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/coacandes/member-service/internal/models"
	"github.com/coacandes/member-service/internal/repository"
	"github.com/coacandes/member-service/internal/utils"
)

type sample struct {
	identification string
	idType         string
	names          string
	surnames       string
	email          string
	phone          string
	address        string
	active         bool
}

var samples = []sample{
	{"1712345678", models.IdentificationIndividual, "Juan Carlos", "Pérez González", "juan.perez@gmail.com", "0987654321", "Av. Amazonas N23-45", true},
	{"1723456789", models.IdentificationIndividual, "María José", "Rodríguez López", "maria.rodriguez@outlook.com", "0998765432", "Calle Roca 456", true},
	{"1734567890", models.IdentificationIndividual, "Carlos Andrés", "García Martínez", "carlos.garcia@yahoo.com", "0976543210", "Av. 6 de Diciembre 789", true},
	{"1745678901", models.IdentificationIndividual, "Ana Lucía", "Fernández Sánchez", "ana.fernandez@gmail.com", "0965432109", "Calle Guayas 101", true},
	{"1756789012", models.IdentificationIndividual, "Luis Alberto", "González Díaz", "luis.gonzalez@hotmail.com", "0954321098", "Av. Shyris 202", true},
	{"1767890123", models.IdentificationIndividual, "Laura Isabel", "López Ruiz", "laura.lopez@gmail.com", "0943210987", "Calle Pichincha 303", true},
	{"1755566778", models.IdentificationIndividual, "Javier Antonio", "Díaz Domínguez", "javier.diaz@hotmail.com", "0854321098", "Av. Eloy Alfaro 1212", false},
	{"1791234567001", models.IdentificationOrganization, "Importadora ABC S.A.", "Comercial", "ventas@abc.com.ec", "022345678", "Av. Amazonas N34-102", true},
	{"1792345678001", models.IdentificationOrganization, "Distribuidora XYZ Cía. Ltda.", "Logística", "info@xyzlogistica.com", "022456789", "Calle Robles 234", true},
	{"1795678901001", models.IdentificationOrganization, "Agroexportadora del Valle S.A.", "Agroindustria", "exportaciones@agrovalle.com", "022789012", "Km 12 Vía a Samborondón", false},
}

// Load inserts the sample roster if the registry is empty. Individual insert
// failures are logged and skipped; seeding is a convenience, not part of the
// service contract.
func Load(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM members`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}
	if count > 0 {
		log.Printf("Registry already holds %d members, skipping seed", count)
		return nil
	}

	writeRepo := repository.NewMemberWriteRepository(db)
	loaded := 0
	for _, s := range samples {
		now := time.Now().UTC()
		member := &models.Member{
			ID:                 utils.GenerateID("mbr"),
			Identification:     s.identification,
			IdentificationType: s.idType,
			Names:              s.names,
			Surnames:           s.surnames,
			Email:              s.email,
			Phone:              s.phone,
			Address:            s.address,
			Active:             s.active,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := writeRepo.Create(member); err != nil {
			log.Printf("Skipping sample member %s: %v", s.identification, err)
			continue
		}
		loaded++
	}

	log.Printf("Seeded %d sample members", loaded)
	return nil
}
