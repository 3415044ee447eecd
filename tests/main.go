package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"medisys/config"
	"medisys/database"
	"medisys/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds a simulated clinic: a handful of doctors across two branches,
// their weekly work blocks, random occupying bookings for the coming
// week, and a sprinkle of exceptions.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database(config.AppConfig.DatabaseName)
	blockColl := db.Collection("workblocks")
	bookingColl := db.Collection("bookings")
	exceptionColl := db.Collection("exceptions")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing demo data.
	for _, coll := range []string{"workblocks", "bookings", "exceptions"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	branches := []string{"branch-north", "branch-south"}
	doctors := []string{"dr-alvarez", "dr-castro", "dr-mendoza", "dr-rojas"}

	// Morning and afternoon blocks, Monday through Friday, plus a short
	// Saturday morning for half the doctors.
	var blocks []interface{}
	for di, doctorID := range doctors {
		branchID := branches[di%len(branches)]
		duration := []int{20, 30}[di%2]

		for weekday := 1; weekday <= 5; weekday++ {
			blocks = append(blocks, models.WorkBlock{
				ID:           uuid.New().String(),
				DoctorID:     doctorID,
				BranchID:     branchID,
				Weekday:      weekday,
				Start:        8 * 60,
				End:          12 * 60,
				SlotDuration: duration,
				Active:       true,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}, models.WorkBlock{
				ID:           uuid.New().String(),
				DoctorID:     doctorID,
				BranchID:     branchID,
				Weekday:      weekday,
				Start:        14 * 60,
				End:          17 * 60,
				SlotDuration: duration,
				Active:       true,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			})
		}
		if di%2 == 0 {
			blocks = append(blocks, models.WorkBlock{
				ID:           uuid.New().String(),
				DoctorID:     doctorID,
				BranchID:     branchID,
				Weekday:      6,
				Start:        9 * 60,
				End:          12 * 60,
				SlotDuration: duration,
				Active:       true,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			})
		}
	}
	if _, err := blockColl.InsertMany(ctx, blocks); err != nil {
		log.Fatalf("Failed to insert work blocks: %v", err)
	}

	// Random bookings over the next 7 days, aligned to 30-minute marks.
	statuses := []string{"pending", "confirmed", "canceled"}
	var bookings []interface{}
	today := time.Now()
	for i := 0; i < 40; i++ {
		doctorIdx := rand.Intn(len(doctors))
		date := today.AddDate(0, 0, rand.Intn(7)).Format("2006-01-02")
		start := (8 + rand.Intn(8)) * 60
		if rand.Intn(2) == 1 {
			start += 30
		}
		status := statuses[rand.Intn(len(statuses))]
		bookings = append(bookings, models.Booking{
			ID:        uuid.New().String(),
			DoctorID:  doctors[doctorIdx],
			BranchID:  branches[doctorIdx%len(branches)],
			PatientID: fmt.Sprintf("patient-%03d", rand.Intn(200)),
			Date:      date,
			Start:     start,
			Status:    status,
			Occupying: status != "canceled",
			CreatedAt: time.Now(),
		})
	}
	if _, err := bookingColl.InsertMany(ctx, bookings); err != nil {
		log.Fatalf("Failed to insert bookings: %v", err)
	}

	// One vacation day and one partial block in the coming week.
	partialStart := 14 * 60
	partialEnd := 17 * 60
	exceptions := []interface{}{
		models.Exception{
			ID:        uuid.New().String(),
			DoctorID:  doctors[0],
			Date:      today.AddDate(0, 0, 3).Format("2006-01-02"),
			Type:      models.ExceptionVacation,
			Reason:    "annual leave",
			CreatedAt: time.Now(),
		},
		models.Exception{
			ID:        uuid.New().String(),
			DoctorID:  doctors[1],
			Date:      today.AddDate(0, 0, 2).Format("2006-01-02"),
			Type:      models.ExceptionPartialBlock,
			Start:     &partialStart,
			End:       &partialEnd,
			Reason:    "staff meeting",
			CreatedAt: time.Now(),
		},
	}
	if _, err := exceptionColl.InsertMany(ctx, exceptions); err != nil {
		log.Fatalf("Failed to insert exceptions: %v", err)
	}

	fmt.Printf("Seeded %d work blocks, %d bookings, %d exceptions\n",
		len(blocks), len(bookings), len(exceptions))
}
