package model

import (
	"time"
)

const (
	CertificateTypePhase   = "phase"
	CertificateTypeProgram = "program"

	// CertificatePhaseProgram はプログラム修了証明書を指す phase パラメータ
	CertificatePhaseProgram = "program"
)

// Certificate はクライアント側で描画する証明書の内容
type Certificate struct {
	Type         string `json:"type"`
	CredentialID string `json:"credentialId"`
	UserName     string `json:"userName"`
	ProgramName  string `json:"programName"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	IssuedDate   string `json:"issuedDate"`
	Issuer       string `json:"issuer"`
	TotalDays    int    `json:"totalDays"`
	Color        string `json:"color"`

	// プログラム修了証明書のみ
	Phases []CertificatePhase `json:"phases,omitempty"`

	// フェーズ証明書のみ
	PhaseName        string  `json:"phaseName,omitempty"`
	PhaseLetter      *string `json:"phaseLetter,omitempty"`
	PhaseDays        string  `json:"phaseDays,omitempty"`
	PhaseDescription *string `json:"phaseDescription,omitempty"`
	PhaseNumber      int     `json:"phaseNumber,omitempty"`
	TotalPhases      int     `json:"totalPhases,omitempty"`
}

type CertificatePhase struct {
	Name        string  `json:"name"`
	Letter      *string `json:"letter"`
	Days        string  `json:"days"`
	Description *string `json:"description"`
}

type CertificateResponse struct {
	Certificate *Certificate `json:"certificate"`
}

// CertificateSummary は証明書一覧の1項目
type CertificateSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsEarned    bool       `json:"isEarned"`
	EarnedDate  *time.Time `json:"earnedDate"`
	PhaseNumber int        `json:"phaseNumber"`
}

type CertificateListResponse struct {
	Program      ProgramSummary       `json:"program"`
	CurrentDay   int                  `json:"currentDay"`
	UserName     string               `json:"userName"`
	Certificates []CertificateSummary `json:"certificates"`
}
