package fallback

import "github.com/sells-group/sitegen-cli/internal/model"

// serviceSpec is the static seed for one catalog service.
type serviceSpec struct {
	name      string
	short     string
	icon      string
	category  string
	emergency bool
	features  []string
	benefits  []string
}

// verticalTemplate holds every per-vertical constant the generator needs.
type verticalTemplate struct {
	label    string // human-readable trade name, e.g. "Plumbing"
	noun     string // what the work is called in copy, e.g. "plumbing"
	theme    string
	tagline  string
	services []serviceSpec
	faqs     []model.FAQ // vertical-specific FAQs appended to the common skeleton
}

// themeForVertical returns a vertical's default theme, falling back to the
// default vertical's theme for anything outside the catalog.
func themeForVertical(v model.Vertical) string {
	if t, ok := verticalTemplates[v]; ok {
		return t.theme
	}
	return verticalTemplates[model.DefaultVertical].theme
}

var verticalTemplates = map[model.Vertical]verticalTemplate{
	model.VerticalPlumbing: {
		label:   "Plumbing",
		noun:    "plumbing",
		theme:   "classic-blue",
		tagline: "Fast, Reliable Plumbing Service You Can Trust",
		services: []serviceSpec{
			{
				name: "Drain Cleaning", icon: "droplet", category: "Repairs", emergency: true,
				short:    "Professional drain cleaning that clears clogs fast and keeps them from coming back.",
				features: []string{"Video camera inspection", "Hydro jetting", "Rooter service", "Preventive maintenance plans"},
				benefits: []string{"Same-day service", "Upfront pricing", "No mess left behind"},
			},
			{
				name: "Water Heater Repair & Installation", icon: "flame", category: "Installation",
				short:    "Repair and replacement for tank and tankless water heaters of every major brand.",
				features: []string{"Tank and tankless systems", "Energy-efficiency upgrades", "Code-compliant installation", "Old unit haul-away"},
				benefits: []string{"Lower energy bills", "Reliable hot water", "Manufacturer warranties honored"},
			},
			{
				name: "Leak Detection & Repair", icon: "search", category: "Repairs", emergency: true,
				short:    "Electronic leak detection that finds hidden leaks before they cause costly damage.",
				features: []string{"Electronic leak detection", "Slab leak specialists", "Pipe repair and repiping", "Insurance documentation"},
				benefits: []string{"Prevent water damage", "Lower water bills", "Minimal disruption to your home"},
			},
			{
				name: "Sewer Line Service", icon: "wrench", category: "Repairs", emergency: true,
				short:    "Complete sewer line inspection, repair, and trenchless replacement.",
				features: []string{"Camera inspections", "Trenchless replacement", "Root removal", "Line locating"},
				benefits: []string{"Avoid yard excavation", "Long-term warranties", "Honest recommendations"},
			},
			{
				name: "Fixture Installation", icon: "tool", category: "Installation",
				short:    "Expert installation of faucets, toilets, sinks, and garbage disposals.",
				features: []string{"All major fixture brands", "Haul-away of old fixtures", "Water-saving upgrades", "Clean, careful workmanship"},
				benefits: []string{"Done right the first time", "Warrantied workmanship", "Updated look and function"},
			},
		},
		faqs: []model.FAQ{
			{Question: "Do you handle emergency plumbing calls?", Answer: "Yes. We answer emergency calls around the clock and dispatch a licensed plumber as quickly as possible, typically within the hour for urgent issues like burst pipes or sewage backups."},
			{Question: "How do I know if I have a hidden water leak?", Answer: "Unexplained increases in your water bill, the sound of running water when fixtures are off, and damp spots on floors or walls are common signs. We use electronic detection equipment to locate leaks without tearing into walls."},
		},
	},
	model.VerticalHVAC: {
		label:   "HVAC",
		noun:    "heating and cooling",
		theme:   "modern-red",
		tagline: "Comfort You Can Count On, All Year Round",
		services: []serviceSpec{
			{
				name: "AC Repair", icon: "snowflake", category: "Repairs", emergency: true,
				short:    "Fast air conditioning repair that restores your comfort, often the same day.",
				features: []string{"All makes and models", "Refrigerant leak repair", "Compressor diagnostics", "Honest repair-vs-replace advice"},
				benefits: []string{"Same-day appointments", "Upfront flat-rate pricing", "Repairs backed by warranty"},
			},
			{
				name: "Heating Repair", icon: "flame", category: "Repairs", emergency: true,
				short:    "Furnace and heat pump repair from certified technicians.",
				features: []string{"Furnace and heat pump experts", "Carbon monoxide testing", "Ignition and blower repair", "Thermostat troubleshooting"},
				benefits: []string{"Safe, reliable heat", "Certified technicians", "No overnight cold houses"},
			},
			{
				name: "System Installation & Replacement", icon: "home", category: "Installation",
				short:    "Right-sized, high-efficiency heating and cooling system installation.",
				features: []string{"Free in-home estimates", "Load calculations, not guesswork", "High-efficiency options", "Full permit handling"},
				benefits: []string{"Lower utility bills", "Financing available", "10-year parts warranties"},
			},
			{
				name: "Preventive Maintenance", icon: "calendar-check", category: "Maintenance",
				short:    "Seasonal tune-ups that extend equipment life and prevent breakdowns.",
				features: []string{"Seasonal tune-ups", "Priority scheduling for members", "Filter replacement", "Multi-point inspections"},
				benefits: []string{"Fewer breakdowns", "Longer equipment life", "Maintained manufacturer warranty"},
			},
			{
				name: "Indoor Air Quality", icon: "wind", category: "Installation",
				short:    "Air purifiers, filtration, and humidity control for a healthier home.",
				features: []string{"Whole-home air purifiers", "Duct cleaning and sealing", "Humidifiers and dehumidifiers", "HEPA filtration"},
				benefits: []string{"Fewer allergens", "Healthier air for your family", "Reduced dust"},
			},
		},
		faqs: []model.FAQ{
			{Question: "How often should I service my HVAC system?", Answer: "Twice a year: a cooling tune-up in spring and a heating tune-up in fall. Regular maintenance catches small problems early, keeps efficiency high, and preserves your manufacturer warranty."},
			{Question: "Should I repair or replace my air conditioner?", Answer: "As a rule of thumb, if the unit is over 12 years old and the repair costs more than a third of replacement, replacement usually makes more financial sense. We give you both numbers and let you decide."},
		},
	},
	model.VerticalElectrical: {
		label:   "Electrical",
		noun:    "electrical",
		theme:   "bold-yellow",
		tagline: "Safe, Professional Electrical Work Done Right",
		services: []serviceSpec{
			{
				name: "Electrical Repair", icon: "zap", category: "Repairs", emergency: true,
				short:    "Licensed electricians for outlets, switches, wiring faults, and more.",
				features: []string{"Troubleshooting and diagnostics", "Outlet and switch repair", "Wiring fault location", "Code corrections"},
				benefits: []string{"Licensed and insured", "Safety-first workmanship", "Clear upfront pricing"},
			},
			{
				name: "Panel Upgrades", icon: "server", category: "Installation",
				short:    "Modern electrical panels that safely power today's homes.",
				features: []string{"100-400 amp upgrades", "Fuse box replacement", "Whole-home surge protection", "Permit and inspection handling"},
				benefits: []string{"Safer home", "Capacity for EV chargers and appliances", "Insurance compliance"},
			},
			{
				name: "Lighting Installation", icon: "lightbulb", category: "Installation",
				short:    "Indoor and outdoor lighting design and installation.",
				features: []string{"Recessed and track lighting", "Ceiling fans", "Landscape lighting", "LED retrofits"},
				benefits: []string{"Lower energy use", "Better ambiance", "Increased home value"},
			},
			{
				name: "EV Charger Installation", icon: "battery-charging", category: "Installation",
				short:    "Level 2 home charging stations installed to code.",
				features: []string{"All charger brands", "Dedicated circuit installation", "Load calculations", "Rebate paperwork help"},
				benefits: []string{"Faster home charging", "Done to code", "Utility rebate guidance"},
			},
			{
				name: "Whole-Home Rewiring", icon: "git-branch", category: "Installation",
				short:    "Complete rewiring for older homes with outdated or unsafe wiring.",
				features: []string{"Knob-and-tube replacement", "Aluminum wiring remediation", "Minimal-disruption methods", "Full inspection included"},
				benefits: []string{"Eliminate fire hazards", "Modern capacity", "Peace of mind"},
			},
		},
		faqs: []model.FAQ{
			{Question: "Why do my circuit breakers keep tripping?", Answer: "Frequent tripping usually means an overloaded circuit, a short, or a failing breaker. It's your panel doing its job, but the underlying cause should be diagnosed by a licensed electrician before it becomes a hazard."},
			{Question: "Do I need a permit for electrical work?", Answer: "Most significant electrical work requires a permit. We handle all permitting and inspections as part of the job, so your project is documented and fully code-compliant."},
		},
	},
	model.VerticalRoofing: {
		label:   "Roofing",
		noun:    "roofing",
		theme:   "slate-gray",
		tagline: "Protecting What Matters Most, From the Top Down",
		services: []serviceSpec{
			{
				name: "Roof Repair", icon: "hammer", category: "Repairs", emergency: true,
				short:    "Prompt repair of leaks, storm damage, and worn roofing.",
				features: []string{"Leak detection and repair", "Shingle replacement", "Flashing and vent repair", "Emergency tarping"},
				benefits: []string{"Stop damage fast", "Documented for insurance", "Workmanship warranty"},
			},
			{
				name: "Roof Replacement", icon: "home", category: "Installation",
				short:    "Complete tear-off and replacement with quality materials and craftsmanship.",
				features: []string{"Asphalt, tile, and metal", "Full tear-off and deck inspection", "Manufacturer-certified crews", "Complete site cleanup"},
				benefits: []string{"Decades of protection", "Manufacturer warranties", "Improved curb appeal"},
			},
			{
				name: "Storm Damage Restoration", icon: "cloud-lightning", category: "Repairs", emergency: true,
				short:    "Insurance-claim assistance and full restoration after hail or wind damage.",
				features: []string{"Free storm inspections", "Insurance claim support", "Emergency board-up", "Full documentation"},
				benefits: []string{"Maximize your claim", "One contractor start to finish", "Fast response"},
			},
			{
				name: "Roof Inspection", icon: "search", category: "Maintenance",
				short:    "Thorough inspections for buyers, sellers, and proactive homeowners.",
				features: []string{"Drone and physical inspection", "Written condition report", "Maintenance recommendations", "Real-estate certifications"},
				benefits: []string{"Know before you buy", "Catch problems early", "Plan ahead with confidence"},
			},
			{
				name: "Gutter Installation", icon: "layout", category: "Installation",
				short:    "Seamless gutters and guards that protect your foundation.",
				features: []string{"Seamless aluminum gutters", "Gutter guards", "Downspout routing", "Fascia repair"},
				benefits: []string{"Protect your foundation", "Less cleaning", "Custom color match"},
			},
		},
		faqs: []model.FAQ{
			{Question: "How do I know if my roof needs replacing?", Answer: "Curling or missing shingles, granules in gutters, daylight in the attic, and an age over 20 years are the main signs. We offer free inspections and will tell you honestly whether repair or replacement makes sense."},
			{Question: "Will my insurance cover storm damage?", Answer: "Most homeowner policies cover sudden storm damage from hail or wind. We document the damage thoroughly, meet your adjuster on-site, and help you through the entire claims process."},
		},
	},
	model.VerticalLandscaping: {
		label:   "Landscaping",
		noun:    "landscaping",
		theme:   "fresh-green",
		tagline: "Beautiful Outdoor Spaces, Expertly Maintained",
		services: []serviceSpec{
			{
				name: "Lawn Care & Maintenance", icon: "scissors", category: "Maintenance",
				short:    "Weekly and bi-weekly service that keeps your lawn healthy and sharp.",
				features: []string{"Mowing and edging", "Fertilization programs", "Weed control", "Seasonal cleanups"},
				benefits: []string{"Consistent, reliable crews", "Healthier turf", "More free weekends"},
			},
			{
				name: "Landscape Design & Installation", icon: "map", category: "Installation",
				short:    "Custom landscape design built around your property and climate.",
				features: []string{"3D design renderings", "Native and drought-tolerant plants", "Sod and planting installation", "Landscape lighting"},
				benefits: []string{"Increased property value", "Designs that thrive locally", "One crew start to finish"},
			},
			{
				name: "Irrigation Systems", icon: "droplet", category: "Installation",
				short:    "Efficient sprinkler and drip systems, installed and repaired.",
				features: []string{"Smart controllers", "Drip irrigation", "System audits and repair", "Seasonal startup and shutdown"},
				benefits: []string{"Lower water bills", "Even coverage", "Set-and-forget watering"},
			},
			{
				name: "Hardscaping", icon: "grid", category: "Installation",
				short:    "Patios, walkways, retaining walls, and outdoor living spaces.",
				features: []string{"Paver patios and walkways", "Retaining walls", "Fire pits and outdoor kitchens", "Drainage solutions"},
				benefits: []string{"Outdoor living space", "Built to last", "Adds resale value"},
			},
			{
				name: "Tree & Shrub Care", icon: "feather", category: "Maintenance",
				short:    "Pruning, trimming, and health care for trees and shrubs.",
				features: []string{"Expert pruning", "Disease and pest treatment", "Deep-root fertilization", "Removal when needed"},
				benefits: []string{"Healthier plants", "Safer property", "Better curb appeal"},
			},
		},
		faqs: []model.FAQ{
			{Question: "How often should my lawn be serviced?", Answer: "Most lawns do best with weekly service during the growing season and bi-weekly or monthly visits in the off-season. We tailor the schedule to your grass type and local climate."},
			{Question: "Do you offer one-time cleanups or only contracts?", Answer: "Both. We're happy to do one-time seasonal cleanups or project work, though most clients move to a recurring plan once they see the results."},
		},
	},
	model.VerticalPainting: {
		label:   "Painting",
		noun:    "painting",
		theme:   "warm-neutral",
		tagline: "Flawless Finishes That Transform Your Space",
		services: []serviceSpec{
			{
				name: "Interior Painting", icon: "home", category: "Interior",
				short:    "Clean, careful interior painting with premium paints and crisp lines.",
				features: []string{"Walls, ceilings, and trim", "Color consultation", "Furniture protection", "Low-VOC paint options"},
				benefits: []string{"Transformed rooms in days", "Meticulous prep and cleanup", "Two-year touch-up warranty"},
			},
			{
				name: "Exterior Painting", icon: "sun", category: "Exterior",
				short:    "Durable exterior painting that protects and beautifies your home.",
				features: []string{"Pressure washing prep", "Rot and stucco repair", "Premium weather-resistant paints", "Full masking and protection"},
				benefits: []string{"Years of protection", "Dramatic curb appeal", "Warrantied workmanship"},
			},
			{
				name: "Cabinet Refinishing", icon: "archive", category: "Interior",
				short:    "Factory-smooth cabinet painting at a fraction of replacement cost.",
				features: []string{"Spray-applied finishes", "Color matching", "Hardware updates", "Durable catalyzed coatings"},
				benefits: []string{"Kitchen transformation", "80% less than replacement", "Finished in under a week"},
			},
			{
				name: "Drywall Repair & Texture", icon: "tool", category: "Interior",
				short:    "Seamless drywall patching and texture matching before paint.",
				features: []string{"Hole and crack repair", "Texture matching", "Water damage repair", "Skim coating"},
				benefits: []string{"Invisible repairs", "One contractor for repair and paint", "Smooth, even walls"},
			},
			{
				name: "Commercial Painting", icon: "briefcase", category: "Commercial",
				short:    "Professional painting for offices, retail, and multi-unit properties.",
				features: []string{"After-hours scheduling", "Durable commercial coatings", "Multi-unit experience", "Licensed and insured crews"},
				benefits: []string{"Minimal business disruption", "On-time, on-budget", "Professional appearance"},
			},
		},
		faqs: []model.FAQ{
			{Question: "How long will my paint job take?", Answer: "A typical interior room takes one day; a full home interior runs three to five days, and most exteriors take four to six days depending on size and prep. We give you a firm schedule before we start."},
			{Question: "Do I need to supply the paint?", Answer: "No. We supply premium paints from Sherwin-Williams and Benjamin Moore, included in your quote. If you have a preferred product or color, we're glad to use it."},
		},
	},
	model.VerticalFlooring: {
		label:   "Flooring",
		noun:    "flooring",
		theme:   "rich-walnut",
		tagline: "Quality Floors, Expert Installation",
		services: []serviceSpec{
			{
				name: "Hardwood Flooring", icon: "layers", category: "Installation",
				short:    "Solid and engineered hardwood installation and refinishing.",
				features: []string{"Solid and engineered options", "Dustless refinishing", "Custom stains", "Repairs and board replacement"},
				benefits: []string{"Timeless beauty", "Adds home value", "Decades of life"},
			},
			{
				name: "Luxury Vinyl Plank", icon: "grid", category: "Installation",
				short:    "Waterproof, durable LVP flooring for busy households.",
				features: []string{"100% waterproof options", "Wood and stone looks", "Subfloor preparation", "Fast installation"},
				benefits: []string{"Pet and kid proof", "Easy maintenance", "Budget friendly"},
			},
			{
				name: "Tile Installation", icon: "square", category: "Installation",
				short:    "Precision tile work for floors, showers, and backsplashes.",
				features: []string{"Porcelain, ceramic, and stone", "Heated floor systems", "Custom showers", "Waterproofing systems"},
				benefits: []string{"Watertight installations", "Custom designs", "Built to last"},
			},
			{
				name: "Carpet Installation", icon: "wind", category: "Installation",
				short:    "Comfortable, quality carpet with professional installation.",
				features: []string{"Wide style selection", "Premium padding", "Furniture moving", "Old carpet haul-away"},
				benefits: []string{"Next-day installation available", "Softer, quieter rooms", "Stain-resistant options"},
			},
			{
				name: "Floor Refinishing", icon: "refresh-cw", category: "Maintenance",
				short:    "Bring tired hardwood floors back to life with dustless refinishing.",
				features: []string{"Dustless sanding", "Stain color options", "Water- and oil-based finishes", "Minor repair included"},
				benefits: []string{"Like-new floors", "Fraction of replacement cost", "Done in days"},
			},
		},
		faqs: []model.FAQ{
			{Question: "How long does flooring installation take?", Answer: "Most single rooms are done in a day. Whole-home projects typically run two to five days depending on material and prep. Hardwood refinishing adds cure time before furniture goes back."},
			{Question: "Do you move furniture?", Answer: "Yes, furniture moving is included in our standard installation. We ask only that small and fragile items be packed up before the crew arrives."},
		},
	},
	model.VerticalPestControl: {
		label:   "Pest Control",
		noun:    "pest control",
		theme:   "clean-teal",
		tagline: "Your Home, Pest-Free. Guaranteed.",
		services: []serviceSpec{
			{
				name: "General Pest Control", icon: "shield", category: "Treatment",
				short:    "Quarterly protection against ants, roaches, spiders, and more.",
				features: []string{"Interior and exterior treatment", "Quarterly service plans", "Child- and pet-safe products", "Free re-treats between visits"},
				benefits: []string{"Year-round protection", "Guaranteed results", "Safe for your family"},
			},
			{
				name: "Termite Control", icon: "alert-triangle", category: "Treatment", emergency: true,
				short:    "Inspection, treatment, and prevention for subterranean and drywood termites.",
				features: []string{"Free termite inspections", "Liquid and bait systems", "Real-estate inspection letters", "Annual warranties"},
				benefits: []string{"Protect your biggest investment", "Transferable warranties", "Early detection"},
			},
			{
				name: "Rodent Control", icon: "x-octagon", category: "Treatment", emergency: true,
				short:    "Complete rodent removal and exclusion that keeps them out for good.",
				features: []string{"Inspection and trapping", "Entry-point exclusion", "Attic sanitation", "Follow-up monitoring"},
				benefits: []string{"Permanent exclusion", "Healthier home", "No recurring infestations"},
			},
			{
				name: "Mosquito Treatment", icon: "wind", category: "Treatment",
				short:    "Seasonal barrier treatments that let you enjoy your yard again.",
				features: []string{"Monthly barrier sprays", "Breeding-site reduction", "Event treatments", "Eco-friendly options"},
				benefits: []string{"Usable outdoor spaces", "Fewer bites", "Season-long control"},
			},
			{
				name: "Bed Bug Treatment", icon: "thermometer", category: "Treatment", emergency: true,
				short:    "Discreet, thorough bed bug elimination with follow-up verification.",
				features: []string{"Heat and conventional treatment", "Canine inspections", "Discreet unmarked vehicles", "Follow-up inspections"},
				benefits: []string{"Complete elimination", "Discreet service", "Sleep easy again"},
			},
		},
		faqs: []model.FAQ{
			{Question: "Are your treatments safe for kids and pets?", Answer: "Yes. We use EPA-registered products applied by licensed technicians, targeted where pests live rather than broadcast. We'll tell you exactly what to expect and any short re-entry times."},
			{Question: "How quickly can you get rid of my pest problem?", Answer: "Most general pest issues improve dramatically within a week of the first treatment. Termites, rodents, and bed bugs follow a structured multi-visit plan, and we guarantee the result."},
		},
	},
}
