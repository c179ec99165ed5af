package guardian

import (
	"errors"
	"strings"
	"time"
)

// Feature is a product capability shown on the home and features pages
type Feature struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Details     []string
}

var Features = []Feature{
	{
		ID:          "quantum",
		Title:       "Quantum-Resistant Cryptography",
		Subtitle:    "Future-Proof Security Engine",
		Description: "Advanced post-quantum algorithms protect against quantum computer attacks",
		Details: []string{
			"CRYSTALS-Dilithium digital signatures",
			"CRYSTALS-KYBER key encapsulation",
			"SPHINCS+ hash-based signatures",
			"Lattice-based cryptographic primitives",
			"NIST-approved algorithms",
			"Quantum-safe key derivation",
		},
	},
	{
		ID:          "ai-guardian",
		Title:       "AI Guardian Protection",
		Subtitle:    "Intelligent Threat Detection",
		Description: "Machine learning algorithms monitor and protect against suspicious activities",
		Details: []string{
			"Real-time behavioral analysis",
			"Anomaly detection algorithms",
			"Transaction pattern recognition",
			"Geo-location verification",
			"Device fingerprinting",
			"Predictive threat modeling",
		},
	},
	{
		ID:          "recovery",
		Title:       "Autonomous Wallet Recovery",
		Subtitle:    "AI-Powered Recovery System",
		Description: "Secure wallet restoration using advanced AI verification and multi-factor authentication",
		Details: []string{
			"Multi-signature recovery policies",
			"Biometric verification",
			"Social recovery networks",
			"Hardware security modules",
			"Time-locked recovery processes",
			"Zero-knowledge proofs",
		},
	},
	{
		ID:          "algorand",
		Title:       "Algorand Integration",
		Subtitle:    "Native Blockchain Support",
		Description: "Seamless integration with the Algorand blockchain and mobile wallets",
		Details: []string{
			"WalletConnect pairing",
			"Algorand SDK integration",
			"Smart contract interactions",
			"Asset management (ASA)",
			"DeFi protocol support",
			"Atomic transactions",
		},
	},
}

// HomeStats are the headline numbers of the landing page
var HomeStats = []Stat{
	{"Uptime", "99.99%"},
	{"Quantum Security", "256-bit"},
	{"False Positives", "< 0.1%"},
	{"AI Monitoring", "24/7"},
}

// TechnicalSpecs are the headline numbers of the features page
var TechnicalSpecs = []Stat{
	{"Security Level", "256-bit Quantum"},
	{"AI Accuracy", "99.7%"},
	{"Response Time", "< 100ms"},
	{"Uptime", "99.99%"},
}

// Layer is one level of the security architecture
type Layer struct {
	Name         string
	Description  string
	Technologies []string
}

var SecurityLayers = []Layer{
	{"Application Layer", "User interface and application logic protection", []string{"Terminal UI", "Input Validation", "Safe Rendering"}},
	{"AI Guardian Layer", "Intelligent monitoring and threat detection", []string{"Machine Learning", "Behavioral Analysis", "Anomaly Detection"}},
	{"Cryptographic Layer", "Quantum-resistant encryption and signing", []string{"Post-Quantum Crypto", "Digital Signatures", "Key Management"}},
	{"Blockchain Layer", "Algorand network integration and smart contracts", []string{"Algorand SDK", "Smart Contracts", "Consensus Protocol"}},
}

// Topic is a titled blurb on a placeholder page
type Topic struct {
	Title       string
	Description string
}

var DeveloperTopics = []Topic{
	{"Algorand SDK Integration", "Examples of wallet integration with the Algorand blockchain and mobile wallets"},
	{"AI Agent APIs", "Documentation for AI Guardian monitoring and alert systems"},
	{"Quantum Security", "Implementation guides for post-quantum cryptographic modules"},
}

var SecurityModules = []Topic{
	{"Wallet Security Settings", "Customize quantum security levels, AI monitoring sensitivity, and recovery policies"},
	{"AI Activity Reports", "View detailed reports on AI Guardian monitoring, threat detection, and security analytics"},
	{"Smart Contract Logs", "Monitor all smart contract interactions with detailed transaction and security logs"},
	{"Key Management", "Manage quantum-resistant keys, backup policies, and recovery configurations"},
	{"Real-time Monitoring", "Live dashboard showing current security status, active threats, and system health"},
	{"Access Control", "Configure multi-signature requirements, user permissions, and admin settings"},
}

var AlertCapabilities = []Topic{
	{"AI Threat Detection", "Machine learning algorithms analyze transaction patterns and detect suspicious wallet activities in real-time"},
	{"Security Breach Alerts", "Instant notifications for unauthorized access attempts, unusual login patterns, and potential security breaches"},
	{"Transaction Monitoring", "Live monitoring of Algorand transactions with alerts for unusual amounts, frequencies, or destinations"},
	{"Behavioral Analysis", "AI-powered analysis of user behavior patterns to identify anomalies and potential threats"},
	{"24/7 Monitoring", "Continuous monitoring with instant alerts delivered via multiple channels"},
	{"Custom Alert Rules", "Configure custom alert thresholds, notification preferences, and automated response actions"},
}

// Post is a community article
type Post struct {
	ID      string
	Title   string
	Excerpt string
	Tag     string
	Date    time.Time
}

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

var CommunityPosts = []Post{
	{"p1", "Post-Quantum Cryptography: State of 2025", "A practical look at NIST selections and adoption across wallets and chains.", "Research", day("2025-09-15")},
	{"p2", "Algorand and PQC: What Developers Need to Know", "Integration patterns, performance trade-offs, and migration steps.", "Developers", day("2025-09-10")},
	{"p3", "AI + Security: Building an Intelligent Guardian", "Behavioral analytics, anomaly detection, and safe automation.", "Security", day("2025-08-28")},
}

var Announcements = []string{
	"v1.1 ships with enhanced AI Guardian analytics.",
	"New PQC benchmarks added to Performance Dashboard.",
	"Community call scheduled next month.",
}

// Link is an external resource
type Link struct {
	Name string
	URL  string
}

var Resources = []Link{
	{"NIST PQC Project", "https://csrc.nist.gov/projects/post-quantum-cryptography"},
	{"Algorand Foundation", "https://algorand.foundation"},
	{"Algorand Developer Portal", "https://developer.algorand.org"},
}

// ForumCategories are the choices offered when drafting a forum post
var ForumCategories = []string{"General", "PQC", "AI Guardian", "Wallet Support"}

// Draft is a forum post composed locally. Drafts are never sent anywhere.
type Draft struct {
	Title    string
	Category string
	Body     string
}

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title must be at most 80 characters")
	ErrBodyTooShort  = errors.New("body must be at least 20 characters")
)

// ValidateTitle checks a draft title
func ValidateTitle(s string) error {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ErrTitleRequired
	case len([]rune(s)) > 80:
		return ErrTitleTooLong
	}
	return nil
}

// ValidateBody checks a draft body
func ValidateBody(s string) error {
	if len([]rune(strings.TrimSpace(s))) < 20 {
		return ErrBodyTooShort
	}
	return nil
}

// Validate checks the whole draft
func (d Draft) Validate() error {
	if err := ValidateTitle(d.Title); err != nil {
		return err
	}
	return ValidateBody(d.Body)
}
