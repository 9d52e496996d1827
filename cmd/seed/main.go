package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/database"
	"github.com/pathlight/corpsite-backend/internal/logger"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/repository"
)

func intPtr(v int) *int { return &v }

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	roleRepo := repository.NewRoleRepository(pool)
	bannerRepo := repository.NewBannerRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	pageConfigRepo := repository.NewPageConfigRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)

	fmt.Println("=== Seeding Demo Content ===")

	// ─── Roles ─────────────────────────────────────────────────────────
	existing, err := roleRepo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list roles")
	}
	haveRole := make(map[string]bool, len(existing))
	for _, r := range existing {
		haveRole[r.Name] = true
	}

	allCodes := make([]string, 0, len(model.AllPermissions))
	for _, p := range model.AllPermissions {
		allCodes = append(allCodes, string(p))
	}

	seedRoles := []struct {
		name  string
		codes []string
	}{
		{"Super Admin", allCodes},
		{"Content Editor", []string{
			string(model.PermissionMediaUpload),
			string(model.PermissionBannersRead),
			string(model.PermissionBannersWrite),
			string(model.PermissionPagesRead),
			string(model.PermissionPagesWrite),
			string(model.PermissionCaseStudiesRead),
			string(model.PermissionCaseStudiesWrite),
			string(model.PermissionNewsRead),
			string(model.PermissionNewsWrite),
			string(model.PermissionHashtagsRead),
			string(model.PermissionHashtagsWrite),
		}},
		{"Recruiter", []string{
			string(model.PermissionJobsRead),
			string(model.PermissionJobsWrite),
			string(model.PermissionApplicationsRead),
			string(model.PermissionApplicationsExport),
		}},
	}

	for _, sr := range seedRoles {
		if haveRole[sr.name] {
			fmt.Printf("Role %q already exists, skipping\n", sr.name)
			continue
		}
		role, err := roleRepo.Create(ctx, sr.name, sr.codes)
		if err != nil {
			log.Fatal().Err(err).Str("role", sr.name).Msg("Failed to create role")
		}
		fmt.Printf("Created role %q (id=%d, %d permissions)\n", role.Name, role.ID, len(sr.codes))
	}

	// ─── Banners ───────────────────────────────────────────────────────
	banners, err := bannerRepo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list banners")
	}
	if len(banners) == 0 {
		demo := []*model.Banner{
			{Title: "Build the career you want", Subtitle: "Programs for every stage", ImageURL: "/uploads/images/demo-hero.jpg", LinkURL: "/about", Order: 1, Enabled: true},
			{Title: "Now hiring mentors", Subtitle: "Join our teaching team", ImageURL: "/uploads/images/demo-hiring.jpg", LinkURL: "/careers", Order: 2, Enabled: true},
		}
		for _, b := range demo {
			if err := bannerRepo.Create(ctx, b); err != nil {
				log.Fatal().Err(err).Msg("Failed to create banner")
			}
		}
		fmt.Printf("Created %d banners\n", len(demo))
	} else {
		fmt.Println("Banners already present, skipping")
	}

	// ─── Job Postings ──────────────────────────────────────────────────
	jobs, err := jobRepo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list jobs")
	}
	if len(jobs) == 0 {
		job := &model.JobPosting{
			Title:          "Career Coach",
			Department:     "Education",
			Location:       "Remote",
			EmploymentType: "full_time",
			Description:    "Guide students through our career education programs.",
			Requirements:   "3+ years of coaching or teaching experience.",
			Order:          1,
			Enabled:        true,
		}
		if err := jobRepo.Create(ctx, job); err != nil {
			log.Fatal().Err(err).Msg("Failed to create job posting")
		}
		fmt.Printf("Created job posting %q (id=%d)\n", job.Title, job.ID)
	} else {
		fmt.Println("Job postings already present, skipping")
	}

	// ─── Page Configuration ────────────────────────────────────────────
	entries, order, err := pageConfigRepo.GetArea(ctx, model.AreaProductPages)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read page configuration")
	}
	if len(entries) == 0 && len(order) == 0 {
		demo := map[string]model.PageEntry{
			"bootcamp":  {Name: "Career Bootcamp", Description: "Our flagship intensive program", Slug: "bootcamp", Order: intPtr(1), Enabled: true},
			"mentoring": {Name: "1:1 Mentoring", Description: "Personal guidance from industry mentors", Slug: "mentoring", Order: intPtr(2), Enabled: true},
		}
		if err := pageConfigRepo.ReplaceArea(ctx, model.AreaProductPages, demo, []string{"bootcamp", "mentoring"}); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed page configuration")
		}
		fmt.Printf("Seeded %s with %d entries\n", model.AreaProductPages, len(demo))
	} else {
		fmt.Println("Page configuration already present, skipping")
	}

	// ─── Site Settings ─────────────────────────────────────────────────
	defaults := map[string]string{
		"site_name":      "Pathlight",
		"contact_email":  "hello@pathlight.example",
		"contact_phone":  "+1-555-0100",
		"social_link":    "https://example.com/pathlight",
		"footer_tagline": "Career education for everyone",
	}
	for key, value := range defaults {
		if _, err := settingRepo.GetByKey(ctx, key); err == nil {
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			log.Fatal().Err(err).Str("key", key).Msg("Failed to read setting")
		}
		if err := settingRepo.Upsert(ctx, key, value); err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("Failed to write setting")
		}
		fmt.Printf("Set %s=%q\n", key, value)
	}

	fmt.Println("=== Seeding Complete ===")
	fmt.Println("Run cmd/create-admin to create an admin account and assign a role.")
}
