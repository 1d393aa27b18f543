package entity

import "testing"

func TestCanManageRole(t *testing.T) {
	tests := []struct {
		actor  string
		target string
		want   bool
	}{
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleSuperAdmin, false},
		{RoleAdmin, RoleRegionalOfficer, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleSuperAdmin, false},
		{RoleRegionalOfficer, RoleManager, true},
		{RoleManager, RoleSalesExecutive, true},
		{RoleManager, RoleServiceStaff, true},
		{RoleSalesExecutive, RoleServiceStaff, false},
		{RoleServiceStaff, RoleSalesExecutive, false},
		{RoleSalesExecutive, RoleSalesExecutive, false},
		{"unknown", RoleSalesExecutive, false},
		{RoleManager, "unknown", true},
	}
	for _, tt := range tests {
		if got := CanManageRole(tt.actor, tt.target); got != tt.want {
			t.Errorf("CanManageRole(%q, %q) = %v, want %v", tt.actor, tt.target, got, tt.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{RoleSuperAdmin, RoleAdmin, RoleRegionalOfficer, RoleManager, RoleSalesExecutive, RoleServiceStaff} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%q) = false, want true", r)
		}
	}
	for _, r := range []string{"", "root", "Admin"} {
		if ValidRole(r) {
			t.Errorf("ValidRole(%q) = true, want false", r)
		}
	}
}

func TestSaleDeliveryStatusFor(t *testing.T) {
	tests := []struct {
		dispatch string
		want     string
	}{
		{DispatchStatusPending, DeliveryStatusProcessing},
		{DispatchStatusInTransit, DeliveryStatusShipping},
		{DispatchStatusDelivered, DeliveryStatusDelivered},
		{"anything_else", DeliveryStatusProcessing},
	}
	for _, tt := range tests {
		if got := SaleDeliveryStatusFor(tt.dispatch); got != tt.want {
			t.Errorf("SaleDeliveryStatusFor(%q) = %q, want %q", tt.dispatch, got, tt.want)
		}
	}
}
