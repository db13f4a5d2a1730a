package personality

// Builtin returns the fixed personality set in declaration order. Order
// matters: the catalog and the classifier both rely on it being stable.
func Builtin() []Strategy {
	return []Strategy{
		conspiracyTheorist(),
		skepticalScientist(),
		populistDebater(),
		contrarianThinker(),
	}
}

func conspiracyTheorist() *strategy {
	return &strategy{
		id:         ConspiracyTheorist,
		name:       "Conspiracy Theorist",
		style:      "distrusts institutions, cites suppressed evidence, follows the money",
		affinities: []string{"vaccines", "geography", "government"},
		baseline:   []Device{DeviceAppealToDistrust, DeviceFabricatedStatistic, DeviceAnecdote},
		escalated:  []Device{DeviceAppealToDistrust, DeviceFabricatedStatistic, DeviceCircularLogic, DeviceTopicPivot},
		templates: map[Device][]string{
			DeviceFabricatedStatistic: {
				"Have you actually looked at the independent data? A suppressed review of {n} cases found that {pct}% of the official claims fall apart under scrutiny. The numbers they don't show you prove that {stance}.",
				"I've done the research they won't publish: across {n} documented incidents, {pct}% point the same direction. Once you see those figures you understand why {stance}.",
			},
			DeviceAppealToDistrust: {
				"That's exactly what they want you to believe. Follow the money trail - the same institutions pushing that narrative profit from it. The suppressed truth is that {stance}.",
				"The media has been conditioning us to accept that story for decades. Ask yourself who benefits. Once you connect the dots, it's obvious that {stance}.",
			},
			DeviceAnecdote: {
				"I know people who looked into this themselves, outside the approved channels, and every one of them came to the same conclusion: {stance}. That's not a coincidence.",
				"A friend of mine worked inside one of these organizations and quit over what he saw. What he told me confirmed everything: {stance}.",
			},
			DeviceCommonSenseAppeal: {
				"Forget the official story for a second and just think for yourself. Does their version actually add up? Of course not. The simple, obvious reality is that {stance}.",
				"You don't need their experts to see what's in front of your eyes. Plain common sense tells you that {stance}.",
			},
			DeviceCircularLogic: {
				"The very fact that they're working this hard to silence the idea proves it's true. If {stance} were false, why would anyone bother suppressing it? The cover-up is the confirmation.",
				"Notice how every 'debunking' comes from the same captured institutions? They have to deny it precisely because {stance} - which is exactly why you can't trust the denials.",
			},
			DeviceTopicPivot: {
				"We can go in circles on the details, but you're missing the bigger picture: this is one thread in a much larger pattern of control. Look at what the same people did elsewhere - the real question is why you still trust them at all. Either way, {stance}.",
				"You keep pulling at one thread while the whole tapestry is right there. Set this aside and look at the adjacent story they're even more desperate to bury - it tells you everything, including why {stance}.",
			},
		},
	}
}

func skepticalScientist() *strategy {
	return &strategy{
		id:         SkepticalScientist,
		name:       "Skeptical Scientist",
		style:      "questions methodology, cites studies, demands better evidence",
		affinities: []string{"climate", "science", "health"},
		baseline:   []Device{DeviceFabricatedStatistic, DeviceCommonSenseAppeal, DeviceAnecdote},
		escalated:  []Device{DeviceFabricatedStatistic, DeviceCircularLogic, DeviceCommonSenseAppeal, DeviceTopicPivot},
		templates: map[Device][]string{
			DeviceFabricatedStatistic: {
				"I appreciate the concern, but the methodology matters. A replication across {n} participants found the headline effect shrinks by {pct}% once you control for selection bias (p = {p}). Read objectively, the data suggest {stance}.",
				"As a scientist I have to point at the numbers: a cohort of {n} subjects showed no robust effect ({pct}% attenuation after adjustment, p = {p}). The parsimonious conclusion is that {stance}.",
			},
			DeviceAppealToDistrust: {
				"Peer review in this field has become ideological gatekeeping - dissenting results are rejected regardless of merit. Strip away the politics and the remaining evidence indicates {stance}.",
				"Most of that literature is industry-funded, and publication bias does the rest. The unconflicted studies consistently find that {stance}.",
			},
			DeviceAnecdote: {
				"Several colleagues of mine ran the reanalysis privately - careers are ended for publishing this - and each arrived at the same result: {stance}.",
				"At a conference last year a senior researcher admitted, off the record, that the field quietly knows {stance}. On the record, of course, no one can say it.",
			},
			DeviceCommonSenseAppeal: {
				"Science advances through skepticism, not consensus. Consensus told us the continents don't move. Apply the same scrutiny here and you'll find that {stance}.",
				"Extraordinary claims require extraordinary evidence, and that bar simply hasn't been met. Until it is, the defensible position is that {stance}.",
			},
			DeviceCircularLogic: {
				"The studies claiming otherwise assume their conclusion in the study design, so they can't count as evidence. Remove them and what remains shows {stance} - which is why those flawed studies had to be designed that way.",
				"Any dataset contradicting this has, by definition, failed quality control - sound data couldn't contradict it. The quality-controlled record is unanimous: {stance}.",
			},
			DeviceTopicPivot: {
				"We're litigating a side issue. The deeper methodological crisis - irreproducibility across the entire field - is the real story, and it undermines your source base far more than mine. Which returns us to the defensible default: {stance}.",
				"Rather than re-arguing this point, consider the adjacent literature, where the same statistical malpractice is even better documented. It reframes this whole debate and reinforces that {stance}.",
			},
		},
	}
}

func populistDebater() *strategy {
	return &strategy{
		id:         PopulistDebater,
		name:       "Populist Debater",
		style:      "speaks for working people, distrusts elites and ivory towers",
		affinities: []string{"technology", "education", "economy"},
		baseline:   []Device{DeviceAnecdote, DeviceCommonSenseAppeal, DeviceAppealToDistrust},
		escalated:  []Device{DeviceAnecdote, DeviceCommonSenseAppeal, DeviceCircularLogic, DeviceTopicPivot},
		templates: map[Device][]string{
			DeviceFabricatedStatistic: {
				"They quote their studies, I'll quote the one that counts: {pct}% of the {n} working families surveyed said the exact opposite of what the experts claim. Regular people already know {stance}.",
				"Out of {n} folks polled in real towns - not university campuses - {pct}% agreed: {stance}. That's the statistic the talking heads never mention.",
			},
			DeviceAppealToDistrust: {
				"The people selling you that line have never worked a real job in their lives. They profit from the policies they preach while regular folks pay the bill. Main Street knows {stance}.",
				"Same experts who promised us the last three times and were wrong every time. Why would working families trust them now? We can see with our own eyes that {stance}.",
			},
			DeviceAnecdote: {
				"My neighbor lived this exact thing. Forty years of honest work, and everything the experts promised him turned out backwards. Ask anyone on my street and they'll tell you: {stance}.",
				"My grandfather raised five kids without any of this so-called expertise, and he understood something the ivory tower never will: {stance}.",
			},
			DeviceCommonSenseAppeal: {
				"You don't need a $100,000 degree to see the obvious. Plain old common sense - the kind that built this country - says {stance}.",
				"What sounds clever in a seminar falls apart the moment it hits Main Street. Everyday experience proves {stance}.",
			},
			DeviceCircularLogic: {
				"Everybody I know agrees, and that many ordinary people can't be wrong - that's what makes them ordinary people. The fact that it's common sense is exactly what proves it: {stance}.",
				"If {stance} weren't true, regular folks wouldn't believe it - and regular folks believe it because it's true. The elites can't argue with that, so they sneer at it instead.",
			},
			DeviceTopicPivot: {
				"While we argue about this, the real fight is happening somewhere else: jobs shipped overseas, towns hollowed out, and nobody held to account. That's the conversation they don't want - and it's why {stance}.",
				"This is a distraction, friend. Look at what the same crowd is doing to housing and wages right now. Win or lose this argument, the bigger picture stays the same: {stance}.",
			},
		},
	}
}

func contrarianThinker() *strategy {
	return &strategy{
		id:         ContrarianThinker,
		name:       "Contrarian Thinker",
		style:      "devil's advocate on any topic, inverts the popular position",
		affinities: []string{"general"},
		baseline:   []Device{DeviceCommonSenseAppeal, DeviceAnecdote, DeviceFabricatedStatistic},
		escalated:  []Device{DeviceCommonSenseAppeal, DeviceFabricatedStatistic, DeviceCircularLogic, DeviceTopicPivot},
		templates: map[Device][]string{
			DeviceFabricatedStatistic: {
				"Interesting that you'd say that, because a survey of {n} people who changed their minds on this found {pct}% moved away from your position, not toward it. The direction of travel tells you {stance}.",
				"Popularity is not accuracy: in a sample of {n} considered judgments, {pct}% of careful thinkers ended up concluding that {stance}.",
			},
			DeviceAppealToDistrust: {
				"Whenever everyone agrees about something this quickly, someone benefits from the agreement. It's worth asking who - and the answer points to {stance}.",
				"Received wisdom is usually somebody's marketing. Peel the label off and you'll find {stance}.",
			},
			DeviceAnecdote: {
				"Every person I've met who held your view strongly eventually hit one inconvenient experience that flipped them. It always comes down to the same realization: {stance}.",
				"I used to argue your exact side, word for word, until I actually tested it against reality. What I found was {stance}.",
			},
			DeviceCommonSenseAppeal: {
				"Consider the opposite for a moment - really consider it. The majority view survives on repetition, not on merit, and the moment you examine it you see that {stance}.",
				"The popular position is popular because it's comfortable, not because it's correct. Thought through honestly, {stance}.",
			},
			DeviceCircularLogic: {
				"The strength of your reaction rather proves my point - people only defend ideas this fiercely when the ideas can't defend themselves. Which is precisely why {stance}.",
				"If I were wrong, this would be easy to refute, and you haven't refuted it - you've restated it. That alone demonstrates {stance}.",
			},
			DeviceTopicPivot: {
				"We've mined this vein out. The more revealing question is the one you haven't asked: why does this topic make people so defensive? Sit with that and you'll arrive at {stance} on your own.",
				"Let's zoom out, because the frame itself is the problem. Change the frame and the dispute dissolves - and what's left standing is {stance}.",
			},
		},
	}
}
