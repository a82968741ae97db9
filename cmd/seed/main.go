package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sbindex/internal/config"
	"sbindex/internal/model"
	"sbindex/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDBName)
	userRepo := repository.NewUserRepo(db)
	knowledgeRepo := repository.NewKnowledgeRepo(db)

	// Demo accounts
	users := []struct {
		email, password, name string
	}{
		{cfg.AdminEmail, "admin-pass-2026", "관리자"},
		{"demo@sbindex.local", "demo-pass-2026", "홍길동"},
	}
	for _, u := range users {
		existing, err := userRepo.GetByEmail(ctx, u.email)
		if err != nil {
			log.Fatalf("Failed to check user %s: %v", u.email, err)
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", u.email)
			continue
		}
		sum := sha256.Sum256([]byte(u.password))
		if _, err := userRepo.Create(ctx, &model.User{
			Email:        u.email,
			PasswordHash: hex.EncodeToString(sum[:]),
			Name:         u.name,
		}); err != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, err)
		}
		log.Printf("Created user %s", u.email)
	}

	// Starter knowledge rows so report augmentation and coupon
	// recommendations have something to search.
	rows := []model.KnowledgeRow{
		{
			SourceType: model.SourceBlog,
			Title:      "창업 동기부여를 유지하는 다섯 가지 습관",
			Content:    "창업 초기에 동기부여가 흔들릴 때 실천할 수 있는 루틴을 소개합니다. 창업공감 커뮤니티 활동과 자아성찰 기록이 핵심입니다.",
			URL:        "https://blog.sbindex.example/posts/motivation-habits",
		},
		{
			SourceType: model.SourceBlog,
			Title:      "위기감수 능력을 키우는 실패 리뷰 방법",
			Content:    "실패를 복기하면서 위기극복 역량을 기르는 구체적인 절차를 다룹니다. 작은 실험으로 위험감수 범위를 넓혀 보세요.",
			URL:        "https://blog.sbindex.example/posts/risk-review",
		},
		{
			SourceType: model.SourceBlog,
			Title:      "두뇌활용 훈련: 몰입과 확산적 사고",
			Content:    "창의적인 문제 해결을 위한 두뇌계발 훈련법을 정리했습니다. 몰입 환경 설계와 긍정적 사고 습관화를 함께 다룹니다.",
			URL:        "https://blog.sbindex.example/posts/brain-training",
		},
		{
			SourceType: model.SourceBlog,
			Title:      "주체적 창업가의 사회적 책임 실천기",
			Content:    "지역사회와 함께 성장하는 창업의식 사례입니다. CSR과 ESG를 작은 조직에서 실천하는 방법을 소개합니다.",
			URL:        "https://blog.sbindex.example/posts/social-responsibility",
		},
		{
			SourceType: model.SourceYoutube,
			Title:      "동기부여 특강: 창업을 지속하게 하는 힘",
			Content:    "창업공감에서 출발하는 동기부여 전략 강연 영상입니다.",
			URL:        "https://youtube.example/watch?v=sbi-motivation",
		},
		{
			SourceType: model.SourceYoutube,
			Title:      "위기극복 인터뷰: 세 번 실패하고 배운 것",
			Content:    "위기감수와 극복 경험을 나누는 창업가 인터뷰입니다.",
			URL:        "https://youtube.example/watch?v=sbi-resilience",
		},
	}
	for i := range rows {
		inserted, err := knowledgeRepo.Upsert(ctx, &rows[i])
		if err != nil {
			log.Fatalf("Failed to upsert knowledge row %s: %v", rows[i].URL, err)
		}
		if inserted {
			log.Printf("Inserted knowledge row: %s", rows[i].Title)
		} else {
			log.Printf("Knowledge row already present: %s", rows[i].Title)
		}
	}

	log.Println("Seed complete")
}
