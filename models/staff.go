package models

// Department groups staff by function.
type Department string

const (
	DeptHousekeeping Department = "housekeeping"
	DeptMaintenance  Department = "maintenance"
	DeptFrontDesk    Department = "front-desk"
)

// StaffMember is an employee eligible for task assignment.
type StaffMember struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Department  Department `json:"department"`
	Skills      []string   `json:"skills"`
	Available   bool       `json:"available"`
	Efficiency  int        `json:"efficiency"` // percentage
	Rating      float64    `json:"rating"`     // out of 5.0
	CurrentTask string     `json:"currentTask,omitempty"`
	PropertyID  string     `json:"propertyId,omitempty"`
}

// HasSkill reports whether the member lists the given skill.
func (s StaffMember) HasSkill(skill string) bool {
	for _, have := range s.Skills {
		if have == skill {
			return true
		}
	}
	return false
}
