package models

// Dataset is the whole scheduling state: every stylist with their
// generated schedules, every appointment ever created, and the service
// catalog. The store adapter loads and saves it as one unit.
type Dataset struct {
	Stylists     []Stylist
	Appointments []Appointment
	Services     []Service
}

func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Stylists:     make([]Stylist, len(d.Stylists)),
		Appointments: make([]Appointment, len(d.Appointments)),
		Services:     make([]Service, len(d.Services)),
	}
	for i, s := range d.Stylists {
		out.Stylists[i] = s.Clone()
	}
	copy(out.Appointments, d.Appointments)
	copy(out.Services, d.Services)
	return out
}

func (d *Dataset) FindStylist(id string) *Stylist {
	for i := range d.Stylists {
		if d.Stylists[i].ID == id {
			return &d.Stylists[i]
		}
	}
	return nil
}

func (d *Dataset) FindAppointment(id int) *Appointment {
	for i := range d.Appointments {
		if d.Appointments[i].ID == id {
			return &d.Appointments[i]
		}
	}
	return nil
}

func (d *Dataset) FindService(id int) *Service {
	for i := range d.Services {
		if d.Services[i].ID == id {
			return &d.Services[i]
		}
	}
	return nil
}

// NextAppointmentID is max(existing ids) + 1, or 1 if none exist.
// Cancelled appointments still count, so ids are never reused.
func (d *Dataset) NextAppointmentID() int {
	max := 0
	for i := range d.Appointments {
		if d.Appointments[i].ID > max {
			max = d.Appointments[i].ID
		}
	}
	return max + 1
}

func (d *Dataset) NextServiceID() int {
	max := 0
	for i := range d.Services {
		if d.Services[i].ID > max {
			max = d.Services[i].ID
		}
	}
	return max + 1
}
