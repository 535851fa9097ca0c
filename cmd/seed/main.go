package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"cinelog/internal/database"
	"cinelog/internal/domain"
)

func main() {
	db, err := database.Connect("cinelog.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM collection_movies")
	db.Exec("DELETE FROM collections")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM movies")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := []domain.User{}
	seeds := []struct {
		username string
		email    string
		bio      string
	}{
		{"filmfan", "filmfan@example.com", "Watching everything since 1999"},
		{"noirlover", "noir@example.com", "Black and white or nothing"},
		{"popcorn", "popcorn@example.com", ""},
	}
	for _, s := range seeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		u := domain.User{
			Username:     s.username,
			Email:        s.email,
			PasswordHash: string(hash),
			Bio:          s.bio,
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User created: %s / password123", s.email)
	}

	// ================== MOVIES ==================
	log.Println("Creating movies...")

	movies := []domain.Movie{
		{TmdbID: 550, Title: "Fight Club", Poster: "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg", VoteAverage: 8.4, ReleaseDate: "1999-10-15"},
		{TmdbID: 680, Title: "Pulp Fiction", Poster: "/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg", VoteAverage: 8.5, ReleaseDate: "1994-09-10"},
		{TmdbID: 27205, Title: "Inception", Poster: "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg", VoteAverage: 8.4, ReleaseDate: "2010-07-15"},
		{TmdbID: 603, Title: "The Matrix", Poster: "/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg", VoteAverage: 8.2, ReleaseDate: "1999-03-30"},
	}
	for i := range movies {
		db.Create(&movies[i])
	}

	// ================== USER CONTENT ==================
	log.Println("Creating favorites, collections and reviews...")

	db.Create(&domain.Favorite{UserID: users[0].ID, MovieID: movies[0].ID})
	db.Create(&domain.Favorite{UserID: users[0].ID, MovieID: movies[2].ID})
	db.Create(&domain.Favorite{UserID: users[1].ID, MovieID: movies[1].ID})

	col := domain.Collection{UserID: users[0].ID, Name: "Mind Benders"}
	db.Create(&col)
	db.Create(&domain.CollectionMovie{CollectionID: col.ID, MovieID: movies[2].ID})
	db.Create(&domain.CollectionMovie{CollectionID: col.ID, MovieID: movies[3].ID})

	db.Create(&domain.Review{UserID: users[0].ID, MovieID: movies[0].ID, Rating: 5, Text: "Still hits hard."})
	db.Create(&domain.Review{UserID: users[1].ID, MovieID: movies[0].ID, Rating: 4, Text: "Great until you think about it too long."})
	db.Create(&domain.Review{UserID: users[1].ID, MovieID: movies[1].ID, Rating: 5, Text: "Dialogue for the ages."})

	log.Println("Seed complete.")
}
