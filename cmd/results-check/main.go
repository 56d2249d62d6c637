// Prints every stored station result. Operator tool for checking what
// participants have saved so far.
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"escaperoom/database"
	"escaperoom/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	defer database.CloseDB()

	db := database.GetDB()

	var results []models.StationResult
	if err := db.Order("user_id ASC, station_id ASC").Find(&results).Error; err != nil {
		log.Fatalf("Failed to load station results: %v", err)
	}

	if len(results) == 0 {
		fmt.Println("Nenhum resultado salvo ainda.")
		return
	}

	for _, r := range results {
		fmt.Printf("Usuário %d, Estação %d, Pontos %d, Tempo %ds\n",
			r.UserID, r.StationID, r.Score, r.TimeSpent)
	}
}
