package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"gorm.io/gorm"

	roadmapRepos "github.com/yungbote/skillpath-backend/internal/data/repos/roadmap"
	userRepos "github.com/yungbote/skillpath-backend/internal/data/repos/user"
	"github.com/yungbote/skillpath-backend/internal/platform/apierr"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

const (
	certWidth  = 1200
	certHeight = 850
)

// CertificateService renders a PNG completion certificate for a finished
// roadmap.
type CertificateService interface {
	Render(ctx context.Context, roadmapID, userID uuid.UUID) ([]byte, error)
}

type certificateService struct {
	db          *gorm.DB
	log         *logger.Logger
	roadmapRepo roadmapRepos.RoadmapRepo
	userRepo    userRepos.UserRepo
}

func NewCertificateService(db *gorm.DB, log *logger.Logger, roadmapRepo roadmapRepos.RoadmapRepo, userRepo userRepos.UserRepo) CertificateService {
	serviceLog := log.With("service", "CertificateService")
	return &certificateService{db: db, log: serviceLog, roadmapRepo: roadmapRepo, userRepo: userRepo}
}

func (cs *certificateService) Render(ctx context.Context, roadmapID, userID uuid.UUID) ([]byte, error) {
	found, err := cs.roadmapRepo.GetByIDs(ctx, nil, []uuid.UUID{roadmapID})
	if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	if len(found) == 0 {
		return nil, apierr.New(http.StatusNotFound, "not_found", errors.New("roadmap not found"))
	}
	rm := found[0]
	if rm.UserID != userID {
		return nil, apierr.New(http.StatusUnauthorized, "not_owner", errors.New("user not authorized"))
	}
	if !rm.IsCompleted {
		return nil, apierr.New(http.StatusConflict, "not_completed", errors.New("roadmap is not completed"))
	}

	users, err := cs.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.New(http.StatusNotFound, "not_found", errors.New("user not found"))
	}
	owner := users[0]
	fullName := strings.TrimSpace(owner.FirstName + " " + owner.LastName)

	png, err := cs.draw(fullName, rm.Skill, time.Now())
	if err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	cs.log.Info("Rendered certificate", "roadmap_id", rm.ID, "bytes", len(png))
	return png, nil
}

func (cs *certificateService) draw(fullName, skill string, issuedAt time.Time) ([]byte, error) {
	fontPath := strings.TrimSpace(os.Getenv("CERTIFICATE_FONT"))
	if fontPath == "" {
		return nil, errors.New("env var CERTIFICATE_FONT is empty")
	}
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := func(points float64) font.Face {
		return truetype.NewFace(parsedFont, &truetype.Options{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	dc := gg.NewContext(certWidth, certHeight)

	dc.SetRGB(0.98, 0.97, 0.94)
	dc.Clear()

	// Double border frame.
	dc.SetRGB(0.13, 0.22, 0.38)
	dc.SetLineWidth(6)
	dc.DrawRectangle(30, 30, certWidth-60, certHeight-60)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(46, 46, certWidth-92, certHeight-92)
	dc.Stroke()

	cx := float64(certWidth) / 2

	dc.SetFontFace(face(56))
	dc.SetRGB(0.13, 0.22, 0.38)
	dc.DrawStringAnchored("Certificate of Completion", cx, 170, 0.5, 0.5)

	dc.SetFontFace(face(24))
	dc.SetRGB(0.25, 0.25, 0.25)
	dc.DrawStringAnchored("This certifies that", cx, 290, 0.5, 0.5)

	dc.SetFontFace(face(46))
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(fullName, cx, 370, 0.5, 0.5)

	dc.SetFontFace(face(24))
	dc.SetRGB(0.25, 0.25, 0.25)
	dc.DrawStringAnchored("has completed the learning roadmap for", cx, 450, 0.5, 0.5)

	dc.SetFontFace(face(40))
	dc.SetRGB(0.13, 0.22, 0.38)
	dc.DrawStringAnchored(skill, cx, 530, 0.5, 0.5)

	dc.SetFontFace(face(20))
	dc.SetRGB(0.35, 0.35, 0.35)
	dc.DrawStringAnchored(issuedAt.Format("January 2, 2006"), cx, 650, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
