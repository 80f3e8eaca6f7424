package money

import "strings"

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func belowThousand(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n < 100 {
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + ones[n%10]
		}
		return s
	}
	s := ones[n/100] + " Hundred"
	if n%100 != 0 {
		s += " " + belowThousand(n%100)
	}
	return s
}

// Words transcribes a non-negative rupee amount into Indian-numbering
// words (Crore/Lakh/Thousand groups) for the legal amount-in-words line.
func Words(n int64) string {
	if n <= 0 {
		return "Zero Only"
	}
	return groups(n) + " Only"
}

func groups(n int64) string {
	var parts []string
	// The crore group recurses so totals beyond 999 crore still read out
	// ("Two Thousand Five Hundred Crore ...") instead of overflowing the
	// three-digit table.
	if crore := n / 10000000; crore > 0 {
		parts = append(parts, groups(crore)+" Crore")
		n %= 10000000
	}
	if lakh := n / 100000; lakh > 0 {
		parts = append(parts, belowThousand(lakh)+" Lakh")
		n %= 100000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, belowThousand(thousand)+" Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}
