package auth

import (
	"sort"
	"strings"

	"github.com/shenikar/crime_observatory/internal/normalize"
)

// Role закрытый перечень ролей системы
type Role int

const (
	RolePublic Role = iota
	RoleAdministrator
	RoleInstitutionalAnalyst
	RoleExecutive
	RolePoliceLiaison
	RoleDataLoader
	RoleInternalViewer
)

var roleNames = map[Role]string{
	RolePublic:               "Public",
	RoleAdministrator:        "Administrator",
	RoleInstitutionalAnalyst: "Institutional Analyst",
	RoleExecutive:            "Executive",
	RolePoliceLiaison:        "Police Liaison",
	RoleDataLoader:           "Data Loader",
	RoleInternalViewer:       "Internal Viewer",
}

// roleAliases сопоставляет нормализованные отображаемые имена ролей (в т.ч. испанские) с перечнем
var roleAliases = map[string]Role{
	"PUBLIC":                            RolePublic,
	"PUBLICO":                           RolePublic,
	"ADMINISTRATOR":                     RoleAdministrator,
	"ADMIN":                             RoleAdministrator,
	"ADMIN SISC":                        RoleAdministrator,
	"ADMINISTRADOR":                     RoleAdministrator,
	"ADMINISTRADOR (OBSERVATORIO)":      RoleAdministrator,
	"INSTITUTIONAL ANALYST":             RoleInstitutionalAnalyst,
	"ANALISTA INSTITUCIONAL":            RoleInstitutionalAnalyst,
	"ANALISTA OBSERVATORIO":             RoleInstitutionalAnalyst,
	"EXECUTIVE":                         RoleExecutive,
	"TOMADOR DE DECISIONES (EJECUTIVO)": RoleExecutive,
	"POLICE LIAISON":                    RolePoliceLiaison,
	"ENLACE FUERZA PUBLICA":             RolePoliceLiaison,
	"DATA LOADER":                       RoleDataLoader,
	"CARGADOR DE DATOS":                 RoleDataLoader,
	"INTERNAL VIEWER":                   RoleInternalViewer,
	"CONSULTA INTERNA":                  RoleInternalViewer,
}

// String возвращает каноническое имя роли
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return roleNames[RolePublic]
}

// ParseRole разбирает имя роли из токена или БД. Неизвестное имя -> (RolePublic, false)
func ParseRole(name string) (Role, bool) {
	key := normalize.Text(strings.ReplaceAll(name, "_", " "))
	role, ok := roleAliases[key]
	if !ok {
		return RolePublic, false
	}
	return role, true
}

// Policy именованная политика доступа - множество разрешенных ролей.
// Администратор удовлетворяет любой политике независимо от списка.
type Policy struct {
	Name    string
	allowed map[Role]struct{}
}

// NewPolicy создает политику
func NewPolicy(name string, roles ...Role) Policy {
	allowed := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return Policy{Name: name, allowed: allowed}
}

// Allows проверяет, разрешена ли роль политикой
func (p Policy) Allows(r Role) bool {
	if r == RoleAdministrator {
		return true
	}
	_, ok := p.allowed[r]
	return ok
}

// AllowedRoles возвращает имена допустимых ролей: администратор первым, остальные по алфавиту
func (p Policy) AllowedRoles() []string {
	names := make([]string, 0, len(p.allowed))
	for r := range p.allowed {
		if r != RoleAdministrator {
			names = append(names, r.String())
		}
	}
	sort.Strings(names)
	return append([]string{RoleAdministrator.String()}, names...)
}

var (
	// PolicyInstitutionalMap полный (без обфускации) доступ к карте
	PolicyInstitutionalMap = NewPolicy("institutional_map", RoleInstitutionalAnalyst, RoleExecutive, RolePoliceLiaison)
	// PolicyIngestion загрузка файлов и пакетов
	PolicyIngestion = NewPolicy("ingestion", RoleDataLoader, RoleInstitutionalAnalyst)
	// PolicyDataAdmin удаление данных
	PolicyDataAdmin = NewPolicy("data_admin")
	// PolicyJobs запуск фоновых загрузок и просмотр журнала
	PolicyJobs = NewPolicy("jobs", RoleInstitutionalAnalyst)
	// PolicyStaff любой сотрудник с ролью, кроме публичной
	PolicyStaff = NewPolicy("staff", RoleInstitutionalAnalyst, RoleExecutive, RolePoliceLiaison, RoleDataLoader, RoleInternalViewer)
	// PolicyProposals рассмотрение гражданских инициатив
	PolicyProposals = NewPolicy("proposals", RoleInstitutionalAnalyst, RoleExecutive)
)
