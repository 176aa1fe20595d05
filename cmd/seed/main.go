package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"chatdesk-be/internal/model"
	"chatdesk-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// Seeds a demo organization with one customer, a staff login
// (agent@demo.chatdesk / password) and a pair of chat sessions.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo data...")

	orgId := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	customerId := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	staffUserId := uuid.MustParse("00000000-0000-0000-0000-000000000003")
	teamId := uuid.MustParse("00000000-0000-0000-0000-000000000004")
	sessionAId := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	sessionBId := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: failed to hash password:", err)
	}

	metadata, _ := json.Marshal(map[string]string{
		"guest_name":  "Dana Smith",
		"guest_email": "dana@example.com",
	})

	now := time.Now()

	rows := []interface{}{
		&model.Organization{Id: orgId, Name: "Demo Org"},
		&model.Customer{Id: customerId, OrganizationId: &orgId, Name: "Demo Restaurant", Plan: "pro"},
		&model.UserMembership{Id: uuid.New(), UserId: staffUserId, Role: "admin", OrganizationId: &orgId},
		&model.DashboardUser{
			Id:           uuid.New(),
			UserId:       staffUserId,
			CustomerId:   customerId,
			Email:        "agent@demo.chatdesk",
			Role:         "admin",
			PasswordHash: string(hash),
			CreatedAt:    now,
		},
		&model.Team{Id: teamId, CustomerId: customerId, Name: "Front Desk", MemberCount: 3},
		&model.ChatSession{
			Id:           sessionAId,
			CustomerId:   customerId,
			VisitorId:    "visitor_demo_a",
			Status:       "active",
			NeedsHuman:   true,
			Metadata:     metadata,
			SessionStart: now.Add(-time.Hour),
			UpdatedAt:    now,
			MessageCount: 2,
		},
		&model.ChatSession{
			Id:           sessionBId,
			CustomerId:   customerId,
			VisitorId:    "visitor_demo_b",
			Status:       "active",
			IsRead:       true,
			SessionStart: now.Add(-2 * time.Hour),
			UpdatedAt:    now.Add(-time.Hour),
			MessageCount: 1,
		},
		&model.ChatMessage{Id: uuid.New(), SessionId: sessionAId, Role: "user", SenderType: "ai", Content: "Can I book a table for four tonight?", Timestamp: now.Add(-time.Hour)},
		&model.ChatMessage{Id: uuid.New(), SessionId: sessionAId, Role: "assistant", SenderType: "ai", Content: "Let me get a human to confirm that for you.", Timestamp: now.Add(-59 * time.Minute)},
		&model.ChatMessage{Id: uuid.New(), SessionId: sessionBId, Role: "user", SenderType: "ai", Content: "What are your opening hours?", Timestamp: now.Add(-2 * time.Hour)},
		&model.Notification{
			Id:        uuid.New(),
			SessionId: sessionAId,
			Type:      "reservation",
			Status:    "unread",
			Summary:   "Table for four tonight",
			GuestName: "Dana Smith",
			CreatedAt: now.Add(-time.Hour),
		},
	}

	for _, row := range rows {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			color.Red("Seed failed: %v", err)
			os.Exit(1)
		}
	}

	color.Green("Seed complete")
	color.White("Staff login: agent@demo.chatdesk / password")
}
