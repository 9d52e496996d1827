package model

// Permission represents a string code for a specific system action.
type Permission string

const (
	// PermissionMediaUpload allows uploading media files.
	PermissionMediaUpload Permission = "media:upload"

	// PermissionBannersRead allows viewing the banner list in the back office.
	PermissionBannersRead Permission = "banners:read"

	// PermissionBannersWrite allows creating, updating, reordering, and deleting banners.
	PermissionBannersWrite Permission = "banners:write"

	// PermissionPagesRead allows viewing page configuration maps.
	PermissionPagesRead Permission = "pages:read"

	// PermissionPagesWrite allows replacing page configuration maps.
	PermissionPagesWrite Permission = "pages:write"

	// PermissionCaseStudiesRead allows viewing case studies.
	PermissionCaseStudiesRead Permission = "case_studies:read"

	// PermissionCaseStudiesWrite allows creating and updating case studies.
	PermissionCaseStudiesWrite Permission = "case_studies:write"

	// PermissionCaseStudiesPublish allows publishing and unpublishing case studies.
	PermissionCaseStudiesPublish Permission = "case_studies:publish"

	// PermissionNewsRead allows viewing news articles.
	PermissionNewsRead Permission = "news:read"

	// PermissionNewsWrite allows creating and updating news articles.
	PermissionNewsWrite Permission = "news:write"

	// PermissionNewsPublish allows publishing and unpublishing news articles.
	PermissionNewsPublish Permission = "news:publish"

	// PermissionHashtagsRead allows viewing hashtags.
	PermissionHashtagsRead Permission = "hashtags:read"

	// PermissionHashtagsWrite allows creating, updating, and deleting hashtags.
	PermissionHashtagsWrite Permission = "hashtags:write"

	// PermissionJobsRead allows viewing job postings.
	PermissionJobsRead Permission = "jobs:read"

	// PermissionJobsWrite allows creating, updating, reordering, and deleting job postings.
	PermissionJobsWrite Permission = "jobs:write"

	// PermissionApplicationsRead allows viewing job applications and downloading resumes.
	PermissionApplicationsRead Permission = "applications:read"

	// PermissionApplicationsExport allows exporting job applications.
	PermissionApplicationsExport Permission = "applications:export"

	// PermissionInquiriesRead allows viewing cooperation inquiries.
	PermissionInquiriesRead Permission = "inquiries:read"

	// PermissionInquiriesWrite allows updating the handling state of inquiries.
	PermissionInquiriesWrite Permission = "inquiries:write"

	// PermissionLogsRead allows viewing operation logs.
	PermissionLogsRead Permission = "logs:read"

	// PermissionAdminsRead allows viewing admin user lists and details.
	PermissionAdminsRead Permission = "admins:read"

	// PermissionAdminsWrite allows creating, updating, and deleting admin users.
	PermissionAdminsWrite Permission = "admins:write"

	// PermissionRolesRead allows viewing admin roles and permissions.
	PermissionRolesRead Permission = "roles:read"

	// PermissionRolesWrite allows creating, updating, and deleting admin roles.
	PermissionRolesWrite Permission = "roles:write"

	// PermissionSettingsRead allows viewing site settings.
	PermissionSettingsRead Permission = "settings:read"

	// PermissionSettingsWrite allows editing site settings.
	PermissionSettingsWrite Permission = "settings:write"

	// PermissionCaptchaVerify allows proxying captcha tickets to the provider.
	PermissionCaptchaVerify Permission = "captcha:verify"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []Permission{
	PermissionMediaUpload,
	PermissionBannersRead,
	PermissionBannersWrite,
	PermissionPagesRead,
	PermissionPagesWrite,
	PermissionCaseStudiesRead,
	PermissionCaseStudiesWrite,
	PermissionCaseStudiesPublish,
	PermissionNewsRead,
	PermissionNewsWrite,
	PermissionNewsPublish,
	PermissionHashtagsRead,
	PermissionHashtagsWrite,
	PermissionJobsRead,
	PermissionJobsWrite,
	PermissionApplicationsRead,
	PermissionApplicationsExport,
	PermissionInquiriesRead,
	PermissionInquiriesWrite,
	PermissionLogsRead,
	PermissionAdminsRead,
	PermissionAdminsWrite,
	PermissionRolesRead,
	PermissionRolesWrite,
	PermissionSettingsRead,
	PermissionSettingsWrite,
	PermissionCaptchaVerify,
}

// PermissionSet supports ANY/ALL membership checks over a principal's
// granted permission codes.
type PermissionSet map[string]struct{}

// NewPermissionSet builds a PermissionSet from granted permission codes.
func NewPermissionSet(codes []string) PermissionSet {
	set := make(PermissionSet, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// HasAny reports whether at least one required code is in the set.
// An empty required list means no restriction and always passes.
func (s PermissionSet) HasAny(required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, code := range required {
		if _, ok := s[code]; ok {
			return true
		}
	}
	return false
}

// HasAll reports whether every required code is in the set.
// An empty required list means no restriction and always passes.
func (s PermissionSet) HasAll(required ...string) bool {
	for _, code := range required {
		if _, ok := s[code]; !ok {
			return false
		}
	}
	return true
}
