package mail

import "github.com/flyfox-ai/funnel/internal/infra/queue"

type emailTemplate struct {
	Subject string
	Body    string
}

// Body copy is presentational text carried over from marketing; the engine
// only fills in the blanks.
var emailTemplates = map[string]emailTemplate{
	queue.TemplateWelcome: {
		Subject: "Welcome to FLYFOX AI",
		Body: `Dear {{.Name}},

Welcome to FLYFOX AI! Thank you for your interest in our quantum-enhanced AI solutions.

Our team will reach out shortly to discuss how we can help your business.

Best regards,
The FLYFOX AI Team
`,
	},
	queue.TemplateTrialActivation: {
		Subject: "Your FLYFOX AI trial is active",
		Body: `Dear {{.Name}},

Your {{.PlanName}} trial is now active. You have full access until {{.EndDate}}.

Log in to your dashboard to get started.

Best regards,
The FLYFOX AI Team
`,
	},
	queue.TemplateTrialReminder: {
		Subject: "Your FLYFOX AI trial is ending soon",
		Body: `Dear {{.Name}},

Your trial is approaching its end date. Upgrade now to keep uninterrupted access.

Best regards,
The FLYFOX AI Team
`,
	},
	queue.TemplateFollowUp: {
		Subject: "Following up on your FLYFOX AI inquiry",
		Body: `Dear {{.Name}},

Just checking in on your interest in FLYFOX AI. Reply to this email and we can
schedule a walkthrough tailored to your use case.

Best regards,
The FLYFOX AI Team
`,
	},
	queue.TemplateConversionThanks: {
		Subject: "Welcome aboard - your FLYFOX AI subscription is live",
		Body: `Dear {{.Name}},

Thank you for becoming a FLYFOX AI customer. Your subscription is live and your
onboarding specialist will be in touch within one business day.

Best regards,
The FLYFOX AI Team
`,
	},
}
