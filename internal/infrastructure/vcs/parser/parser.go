package parser

import (
	"net/url"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// Parse clasifica una URL de PR/MR y extrae los identificadores del
// proveedor. Es una función pura: no hace red y siempre retorna el mismo
// resultado para el mismo string. Cualquier forma no reconocida (incluyendo
// URLs malformadas) produce ProviderUnknown con el resto de los campos
// vacíos.
func Parse(rawURL string) models.ParsedReference {
	unknown := models.ParsedReference{Provider: models.ProviderUnknown}

	u, err := url.Parse(rawURL)
	if err != nil {
		return unknown
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")

	switch {
	case strings.Contains(u.Host, "github.com"):
		// https://github.com/{owner}/{repo}/pull/{number}
		if len(parts) >= 4 && parts[2] == "pull" {
			return models.ParsedReference{
				Provider: models.ProviderGitHub,
				Owner:    parts[0],
				Repo:     parts[1],
				PRNumber: parts[3],
			}
		}

	case strings.Contains(u.Host, "gitlab.com"):
		// https://gitlab.com/{project_path...}/merge_requests/{iid}
		// Todo lo anterior a merge_requests, unido por "/", es el project path.
		if i := indexOf(parts, "merge_requests"); i >= 0 && i+1 < len(parts) {
			return models.ParsedReference{
				Provider:    models.ProviderGitLab,
				ProjectPath: strings.Join(parts[:i], "/"),
				MRNumber:    parts[i+1],
			}
		}

	case strings.Contains(u.Host, "bitbucket.org"):
		// https://bitbucket.org/{workspace}/{repo}/pull-requests/{id}
		if i := indexOf(parts, "pull-requests"); i >= 0 && i+1 < len(parts) && len(parts) >= 2 {
			return models.ParsedReference{
				Provider: models.ProviderBitbucket,
				Owner:    parts[0],
				Repo:     parts[1],
				PRNumber: parts[i+1],
			}
		}
	}

	return unknown
}

func indexOf(parts []string, segment string) int {
	for i, p := range parts {
		if p == segment {
			return i
		}
	}
	return -1
}
