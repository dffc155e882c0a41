package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

var (
	servicesUpcoming     bool
	servicesCreatedToday bool
	servicesAll          bool
	servicesJSON         bool
	serviceShowJSON      bool
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List transport services",
	Long: `Lists transport services, newest first. Without flags, shows the
services scheduled for today.

Examples:
  auser services                  # today's services
  auser services --upcoming       # from tomorrow onward
  auser services --created-today  # entered today
  auser services --all            # every service, full details`,
	RunE: runServices,
}

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Inspect or update a single transport service",
}

var serviceShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the full details of one service",
	Args:  cobra.ExactArgs(1),
	RunE:  runServiceShow,
}

var serviceUpdateCmd = &cobra.Command{
	Use:   "update [id] [field=value ...]",
	Short: "Update fields of a service",
	Long: `Updates one or more fields of a service item.

Writable fields: operator, date, counterpart_name, pickup_time,
dropoff_time, service_type.

Example:
  auser service update 42 operator=ROSSI pickup_time=08:30`,
	Args: cobra.MinimumNArgs(2),
	RunE: runServiceUpdate,
}

func init() {
	servicesCmd.Flags().BoolVar(&servicesUpcoming, "upcoming", false, "services from tomorrow onward")
	servicesCmd.Flags().BoolVar(&servicesCreatedToday, "created-today", false, "services entered today")
	servicesCmd.Flags().BoolVar(&servicesAll, "all", false, "every service, full details")
	servicesCmd.Flags().BoolVar(&servicesJSON, "json", false, "output as JSON")
	serviceShowCmd.Flags().BoolVar(&serviceShowJSON, "json", false, "output as JSON")

	serviceCmd.AddCommand(serviceShowCmd)
	serviceCmd.AddCommand(serviceUpdateCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(serviceCmd)
}

func runServices(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	ctx := context.Background()

	if servicesAll {
		details, err := fetchWithSnapshot(ctx, cmd, domain.ListServiceDetails, recordService.AllServiceDetails)
		if err != nil {
			return err
		}
		if servicesJSON {
			return outputJSON(cmd, details)
		}
		return outputServiceDetails(cmd, details)
	}

	var (
		listType domain.ListType
		fetch    func(context.Context) ([]domain.Service, error)
	)
	switch {
	case servicesUpcoming:
		listType = domain.ListUpcomingServices
		fetch = recordService.UpcomingServices
	case servicesCreatedToday:
		listType = domain.ListServicesCreatedToday
		fetch = recordService.ServicesCreatedToday
	default:
		listType = domain.ListDayServices
		fetch = recordService.DayServices
	}

	services, err := fetchWithSnapshot(ctx, cmd, listType, fetch)
	if err != nil {
		return err
	}

	if servicesJSON {
		return outputJSON(cmd, services)
	}
	return outputServices(cmd, services)
}

func runServiceShow(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid service id: %s", args[0])
	}

	detail, err := recordService.ServiceDetail(context.Background(), id)
	if err != nil {
		return err
	}

	if serviceShowJSON {
		return outputJSON(cmd, detail)
	}
	return outputServiceDetail(cmd, detail)
}

func runServiceUpdate(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid service id: %s", args[0])
	}

	fields := make(map[string]string, len(args)-1)
	for _, arg := range args[1:] {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return fmt.Errorf("invalid field assignment: %s (expected field=value)", arg)
		}
		fields[key] = value
	}

	if err := recordService.UpdateService(context.Background(), id, fields); err != nil {
		return err
	}

	cmd.Printf("Service %d updated.\n", id)
	return nil
}

func outputServices(cmd *cobra.Command, services []domain.Service) error {
	if len(services) == 0 {
		cmd.Println("No services found.")
		return nil
	}

	for i := range services {
		s := &services[i]
		line := fmt.Sprintf("  [%d] %s", s.ID, s.Date)
		if s.PickupTime != "" {
			line += " " + s.PickupTime
		}
		if s.CounterpartName != "" {
			line += "  " + s.CounterpartName
		}
		if s.Operator != "" {
			line += "  op: " + s.Operator
		}
		if s.ServiceType != "" {
			line += "  (" + s.ServiceType + ")"
		}
		cmd.Println(line)
	}
	cmd.Printf("\n%d service(s)\n", len(services))
	return nil
}

func outputServiceDetail(cmd *cobra.Command, d domain.ServiceDetail) error {
	cmd.Printf("Service %d\n", d.ID)
	rows := []struct{ label, value string }{
		{"Date", d.PickupDate},
		{"Member", d.MemberID},
		{"Transported", d.TransportedPerson},
		{"Pickup", joinNonEmpty(d.StartTime, d.PickupCity, d.PickupAddress)},
		{"Destination", joinNonEmpty(d.ArrivalTime, d.DestCity, d.DestAddress)},
		{"Type", d.ServiceType},
		{"Wheelchair", d.Wheelchair},
		{"Requester", d.Requester},
		{"Reason", d.Reason},
		{"Operators", joinNonEmpty(d.Operator, d.Operator2)},
		{"Vehicle", d.Vehicle},
		{"Duration", d.Duration},
		{"Km", d.DistanceKm},
		{"Payment", joinNonEmpty(d.Payment, d.PaymentType, d.CollectionStatus)},
		{"Transfer date", d.TransferDate},
		{"Receipt date", d.ReceiptDate},
		{"Status", d.Status},
		{"Pickup notes", d.PickupNotes},
		{"Arrival notes", d.ArrivalNotes},
		{"Closing notes", d.ClosingNotes},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		cmd.Printf("  %-14s %s\n", row.label+":", row.value)
	}
	return nil
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

func outputServiceDetails(cmd *cobra.Command, details []domain.ServiceDetail) error {
	if len(details) == 0 {
		cmd.Println("No services found.")
		return nil
	}

	for i := range details {
		d := &details[i]
		cmd.Printf("  [%d] %s %s  %s", d.ID, d.PickupDate, d.StartTime, d.TransportedPerson)
		if d.Status != "" {
			cmd.Printf("  [%s]", d.Status)
		}
		cmd.Println()
	}
	cmd.Printf("\n%d service(s)\n", len(details))
	return nil
}
