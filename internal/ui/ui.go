// Package ui maps component variants and sizes to Tailwind class lists.
package ui

import "github.com/eskrenkovic/storefront-admin/internal/format"

type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSmall   ButtonSize = "sm"
	ButtonSizeLarge   ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
)

type SpinnerSize string

const (
	SpinnerSmall  SpinnerSize = "sm"
	SpinnerMedium SpinnerSize = "md"
	SpinnerLarge  SpinnerSize = "lg"
)

const (
	buttonBase  = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50"
	badgeBase   = "inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold transition-colors"
	spinnerBase = "animate-spin rounded-full border-2 border-current border-t-transparent"
)

var buttonVariants = map[ButtonVariant]string{
	ButtonDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
	ButtonOutline:     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	ButtonSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	ButtonGhost:       "hover:bg-accent hover:text-accent-foreground",
	ButtonLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizes = map[ButtonSize]string{
	ButtonSizeDefault: "h-10 px-4 py-2",
	ButtonSizeSmall:   "h-9 rounded-md px-3",
	ButtonSizeLarge:   "h-11 rounded-md px-8",
	ButtonSizeIcon:    "h-10 w-10",
}

var badgeVariants = map[BadgeVariant]string{
	BadgeDefault:     "border-transparent bg-primary text-primary-foreground hover:bg-primary/80",
	BadgeSecondary:   "border-transparent bg-secondary text-secondary-foreground hover:bg-secondary/80",
	BadgeDestructive: "border-transparent bg-destructive text-destructive-foreground hover:bg-destructive/80",
	BadgeOutline:     "text-foreground",
}

var spinnerSizes = map[SpinnerSize]string{
	SpinnerSmall:  "h-4 w-4",
	SpinnerMedium: "h-6 w-6",
	SpinnerLarge:  "h-10 w-10",
}

// ButtonClasses returns the classes for a button. Unknown variants and sizes
// fall back to the defaults; extra classes are appended.
func ButtonClasses(variant ButtonVariant, size ButtonSize, extra ...string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants[ButtonDefault]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes[ButtonSizeDefault]
	}
	return format.ClassNames(append([]string{buttonBase, v, s}, extra...)...)
}

func BadgeClasses(variant BadgeVariant, extra ...string) string {
	v, ok := badgeVariants[variant]
	if !ok {
		v = badgeVariants[BadgeDefault]
	}
	return format.ClassNames(append([]string{badgeBase, v}, extra...)...)
}

func SpinnerClasses(size SpinnerSize, extra ...string) string {
	s, ok := spinnerSizes[size]
	if !ok {
		s = spinnerSizes[SpinnerMedium]
	}
	return format.ClassNames(append([]string{spinnerBase, s}, extra...)...)
}
