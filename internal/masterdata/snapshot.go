package masterdata

// Snapshot is an immutable view of the reference data, assembled once per
// operation from full-table reads. Lookup maps are built eagerly so the
// resolver and the workflow never touch the store mid-operation.
type Snapshot struct {
	Departments      []Department
	JobTitles        []JobTitle
	SalaryStructures []SalaryStructure
	AllowanceTypes   []AllowanceType

	departmentsByID map[string]*Department
	jobTitlesByID   map[string]*JobTitle
}

func NewSnapshot(departments []Department, jobTitles []JobTitle, structures []SalaryStructure, allowanceTypes []AllowanceType) *Snapshot {
	snap := &Snapshot{
		Departments:      departments,
		JobTitles:        jobTitles,
		SalaryStructures: structures,
		AllowanceTypes:   allowanceTypes,
		departmentsByID:  make(map[string]*Department, len(departments)),
		jobTitlesByID:    make(map[string]*JobTitle, len(jobTitles)),
	}

	for i := range snap.Departments {
		snap.departmentsByID[snap.Departments[i].ID] = &snap.Departments[i]
	}
	for i := range snap.JobTitles {
		snap.jobTitlesByID[snap.JobTitles[i].ID] = &snap.JobTitles[i]
	}

	return snap
}

func (s *Snapshot) DepartmentByID(id string) (*Department, bool) {
	d, ok := s.departmentsByID[id]
	return d, ok
}

func (s *Snapshot) JobTitleByID(id string) (*JobTitle, bool) {
	t, ok := s.jobTitlesByID[id]
	return t, ok
}

// ActiveStructureForGrade returns the first active salary structure for the
// grade in store order. At most one active structure per grade is the intended
// configuration; duplicates resolve deterministically to the first.
func (s *Snapshot) ActiveStructureForGrade(jobGradeID string) (*SalaryStructure, bool) {
	for i := range s.SalaryStructures {
		st := &s.SalaryStructures[i]
		if st.JobGradeID == jobGradeID && st.IsActive() {
			return st, true
		}
	}
	return nil, false
}

// DepartmentsOfType lists departments whose type matches, in store order. Used
// to expand managesDepartmentTypeId into a managed-department set.
func (s *Snapshot) DepartmentsOfType(typeID string) []Department {
	var out []Department
	for _, d := range s.Departments {
		if d.TypeID == typeID {
			out = append(out, d)
		}
	}
	return out
}

// ManagedDepartmentIDs resolves the managed-department set for a head job
// title: the explicit list when present, otherwise all departments of the
// managed type. Non-head titles manage nothing.
func (s *Snapshot) ManagedDepartmentIDs(title *JobTitle) map[string]bool {
	managed := make(map[string]bool)
	if title == nil || !title.IsHeadOfDepartment {
		return managed
	}
	for _, id := range title.ManagedDepartmentIDs {
		managed[id] = true
	}
	if title.ManagesDepartmentTypeID != nil {
		for _, d := range s.DepartmentsOfType(*title.ManagesDepartmentTypeID) {
			managed[d.ID] = true
		}
	}
	return managed
}
